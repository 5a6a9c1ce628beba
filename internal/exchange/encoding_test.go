package exchange

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeText_DecodeText(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data := []byte("0123456789abcdef")

		encoded := EncodeText(data)
		decoded, err := DecodeText(encoded)

		assert.NoError(t, err)
		assert.True(t, bytes.Equal(data, decoded))
	})

	t.Run("no padding and url-safe alphabet", func(t *testing.T) {
		data := bytes.Repeat([]byte{0xfb, 0xff, 0xfe}, 8)

		encoded := EncodeText(data)
		assert.NotContains(t, encoded, "=")
		assert.NotContains(t, encoded, "+")
		assert.NotContains(t, encoded, "/")
	})

	t.Run("invalid alphabet fails", func(t *testing.T) {
		decoded, err := DecodeText("not base64 at all!")
		assert.ErrorIs(t, err, ErrMalformedEncoding)
		assert.Nil(t, decoded)
	})

	t.Run("padded input fails", func(t *testing.T) {
		decoded, err := DecodeText("QUJDREVGR0hJSktM==")
		assert.ErrorIs(t, err, ErrMalformedEncoding)
		assert.Nil(t, decoded)
	})

	t.Run("decodes below nonce size fails", func(t *testing.T) {
		short := EncodeText(make([]byte, NonceSize-1))

		decoded, err := DecodeText(short)
		assert.ErrorIs(t, err, ErrMalformedEncoding)
		assert.Nil(t, decoded)
	})

	t.Run("empty input fails", func(t *testing.T) {
		decoded, err := DecodeText("")
		assert.ErrorIs(t, err, ErrMalformedEncoding)
		assert.Nil(t, decoded)
	})

	t.Run("exactly nonce size passes", func(t *testing.T) {
		decoded, err := DecodeText(EncodeText(make([]byte, NonceSize)))
		assert.NoError(t, err)
		assert.Len(t, decoded, NonceSize)
	})
}

func TestExportKey_ImportKey(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		key, err := GenerateKey()
		require.NoError(t, err)

		exported, err := ExportKey(key)
		require.NoError(t, err)
		assert.NotContains(t, exported, "=")

		imported, err := ImportKey(exported)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal(key, imported))
	})

	t.Run("export rejects short key", func(t *testing.T) {
		exported, err := ExportKey(make([]byte, 31))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.Empty(t, exported)
	})

	t.Run("import rejects invalid alphabet", func(t *testing.T) {
		imported, err := ImportKey("!!not-a-key!!")
		assert.ErrorIs(t, err, ErrMalformedEncoding)
		assert.Nil(t, imported)
	})

	t.Run("import rejects wrong length", func(t *testing.T) {
		imported, err := ImportKey(EncodeText(make([]byte, 16)))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.Nil(t, imported)
	})
}

func TestExchange_FullPipeline(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	codec, err := New(key, AESGCM)
	require.NoError(t, err)

	plaintext := []byte(strings.Repeat("s", 10000))

	envelope, err := codec.Encrypt(plaintext)
	require.NoError(t, err)

	// The transport form of a maximum-size plaintext stays under the
	// 15,000-character request ceiling.
	text := EncodeText(envelope)
	assert.LessOrEqual(t, len(text), 15000)

	decoded, err := DecodeText(text)
	require.NoError(t, err)

	decrypted, err := codec.Decrypt(decoded)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(plaintext, decrypted))
}
