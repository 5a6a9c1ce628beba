package exchange

// Zero overwrites a byte slice with zeros to clear key material or plaintext
// from memory once an operation finishes.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
