// Package integration provides end-to-end tests for the burnbox API.
// Scenarios drive the full HTTP stack: router, middleware chain, use cases
// and the secret store, against every store driver reachable from the test
// environment. The in-process memory driver always runs; PostgreSQL, MySQL
// and Redis scenarios skip when their backing service is down.
package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/burnbox/internal/app"
	"github.com/allisson/burnbox/internal/config"
	"github.com/allisson/burnbox/internal/exchange"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
	"github.com/allisson/burnbox/internal/testutil"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container   *app.Container
	db          *sql.DB
	redisClient *goredis.Client
	server      *httptest.Server
	driver      string
}

// storeDrivers lists every store backend the API supports.
func storeDrivers() []string {
	return []string{"memory", "postgres", "mysql", "redis"}
}

// integrationConfig returns a baseline configuration for integration tests:
// every optional boundary (rate limiting, origin guard, CORS, metrics) is off
// so scenarios enable exactly what they exercise.
func integrationConfig(driver string) *config.Config {
	return &config.Config{
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		StoreDriver:          driver,
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		SecretTTL:            24 * time.Hour,
		ShareLinkBase:        "http://localhost:8080",
	}
}

// setupIntegrationTest initializes the store, the DI container and an HTTP
// test server for the given driver. Skips the test when the driver's backing
// service is not reachable.
func setupIntegrationTest(t *testing.T, cfg *config.Config) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var redisClient *goredis.Client

	switch cfg.StoreDriver {
	case "postgres":
		testutil.SkipIfNoPostgres(t)
		db = testutil.SetupPostgresDB(t)
		cfg.DBConnectionString = testutil.GetPostgresTestDSN()
	case "mysql":
		testutil.SkipIfNoMySQL(t)
		db = testutil.SetupMySQLDB(t)
		cfg.DBConnectionString = testutil.GetMySQLTestDSN()
	case "redis":
		testutil.SkipIfNoRedis(t)
		redisClient = testutil.SetupRedis(t)
		opts, err := goredis.ParseURL(testutil.GetRedisTestURL())
		require.NoError(t, err, "failed to parse redis test URL")
		cfg.RedisAddr = opts.Addr
		cfg.RedisPassword = opts.Password
		cfg.RedisDB = opts.DB
	}

	container := app.NewContainer(cfg)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	return &integrationTestContext{
		container:   container,
		db:          db,
		redisClient: redisClient,
		server:      httptest.NewServer(handler),
		driver:      cfg.StoreDriver,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}

	if ctx.db != nil {
		testutil.TeardownDB(t, ctx.db)
	}

	if ctx.redisClient != nil {
		testutil.TeardownRedis(t, ctx.redisClient)
	}
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
	headers map[string]string,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// sealEnvelope encrypts plaintext under a fresh key and returns the
// transport envelope together with the codec that opens it.
func sealEnvelope(t *testing.T, plaintext string) (string, *exchange.Codec) {
	t.Helper()

	key, err := exchange.GenerateKey()
	require.NoError(t, err, "failed to generate key")

	codec, err := exchange.New(key, exchange.AESGCM)
	require.NoError(t, err, "failed to create codec")

	envelope, err := codec.Encrypt([]byte(plaintext))
	require.NoError(t, err, "failed to encrypt plaintext")

	return exchange.EncodeText(envelope), codec
}

// TestIntegration_Health_BasicChecks validates the health and readiness
// endpoints against every reachable store driver.
func TestIntegration_Health_BasicChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	for _, driver := range storeDrivers() {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, integrationConfig(driver))
			defer teardownIntegrationTest(t, ctx)

			// [1/2] Test GET /health - Health check endpoint
			t.Run("01_HealthCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil, nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "healthy", response["status"])
			})

			// [2/2] Test GET /ready - Readiness check with a live store probe
			t.Run("02_ReadinessCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil, nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response struct {
					Status     string            `json:"status"`
					Components map[string]string `json:"components"`
				}
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "ready", response.Status)
				assert.Equal(t, "ok", response.Components["store"])
			})
		})
	}
}

// TestIntegration_Secrets_OneShotFlow exercises the complete secret
// lifecycle against every reachable store driver: share, the single
// retrieval, and every rejection path the API defines.
func TestIntegration_Secrets_OneShotFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	const plaintext = "integration test payload: the cake is a lie"

	for _, driver := range storeDrivers() {
		t.Run(driver, func(t *testing.T) {
			ctx := setupIntegrationTest(t, integrationConfig(driver))
			defer teardownIntegrationTest(t, ctx)

			envelope, codec := sealEnvelope(t, plaintext)
			var secretID string

			// [1/8] Test POST /v1/secrets - Share a sealed envelope
			t.Run("01_ShareSecret", func(t *testing.T) {
				requestBody := map[string]string{"encrypted_data": envelope}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, nil)
				assert.Equal(t, http.StatusCreated, resp.StatusCode)

				var response struct {
					ID string `json:"id"`
				}
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				require.NoError(t, secretsDomain.ValidateID(response.ID))

				secretID = response.ID
			})

			// [2/8] Test GET /v1/secrets/:id - The one allowed retrieval
			t.Run("02_RetrieveOnce", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/secrets/"+secretID, nil, nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

				var response struct {
					EncryptedData string `json:"encrypted_data"`
					CreatedAt     int64  `json:"created_at"`
				}
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, envelope, response.EncryptedData)
				assert.Positive(t, response.CreatedAt)

				// The envelope survives the round trip bit-exact.
				data, err := exchange.DecodeText(response.EncryptedData)
				require.NoError(t, err)
				opened, err := codec.Decrypt(data)
				require.NoError(t, err)
				assert.Equal(t, plaintext, string(opened))
			})

			// [3/8] A second retrieval must find nothing
			t.Run("03_RetrieveAgainGone", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/secrets/"+secretID, nil, nil)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "not_found", response["error"])
			})

			// [4/8] An identifier that was never issued answers the same way
			t.Run("04_UnknownIDNotFound", func(t *testing.T) {
				unknownID, err := secretsDomain.NewID()
				require.NoError(t, err)

				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/secrets/"+unknownID, nil, nil)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)

				var response map[string]string
				err = json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "not_found", response["error"])
			})

			// [5/8] Malformed identifiers are rejected before the store
			t.Run("05_MalformedIDRejected", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/secrets/not-a-valid-id", nil, nil)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "invalid_input", response["error"])
			})

			// [6/8] Envelopes over the size cap are rejected
			t.Run("06_OversizedEnvelopeRejected", func(t *testing.T) {
				requestBody := map[string]string{
					"encrypted_data": strings.Repeat("A", secretsDomain.MaxEnvelopeChars+1),
				}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, nil)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "validation_error", response["error"])
			})

			// [7/8] Envelopes outside the transport alphabet are rejected
			t.Run("07_BadAlphabetEnvelopeRejected", func(t *testing.T) {
				requestBody := map[string]string{
					"encrypted_data": strings.Repeat("A", 49) + "+",
				}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, nil)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "validation_error", response["error"])
			})

			// [8/8] Malformed JSON bodies are rejected
			t.Run("08_MalformedJSONRejected", func(t *testing.T) {
				req, err := http.NewRequest(
					http.MethodPost,
					ctx.server.URL+"/v1/secrets",
					strings.NewReader(`{"encrypted_data": `),
				)
				require.NoError(t, err)
				req.Header.Set("Content-Type", "application/json")

				client := &http.Client{Timeout: 10 * time.Second}
				resp, err := client.Do(req)
				require.NoError(t, err)
				defer func() { _ = resp.Body.Close() }()

				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})
		})
	}
}

// TestIntegration_RateLimit_ShareQuota validates fixed-window quota
// enforcement and the pacing headers on the share endpoint.
func TestIntegration_RateLimit_ShareQuota(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := integrationConfig("memory")
	cfg.RateLimitEnabled = true
	cfg.RateLimitShareLimit = 3
	cfg.RateLimitShareWindow = time.Minute
	cfg.RateLimitRetrieveLimit = 100
	cfg.RateLimitRetrieveWindow = time.Minute

	ctx := setupIntegrationTest(t, cfg)
	defer teardownIntegrationTest(t, ctx)

	envelope, _ := sealEnvelope(t, "rate limited payload")
	requestBody := map[string]string{"encrypted_data": envelope}

	// [1/3] The first three shares pass, with the remaining count falling
	t.Run("01_WithinQuota", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, nil)
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
			assert.Equal(t, "3", resp.Header.Get("X-RateLimit-Limit"))
		}
	})

	// [2/3] The fourth share in the window is denied
	t.Run("02_QuotaExceeded", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, nil)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Reset"))
		assert.NotEmpty(t, resp.Header.Get("Retry-After"))

		var response map[string]string
		err := json.Unmarshal(body, &response)
		require.NoError(t, err)
		assert.Equal(t, "rate_limited", response["error"])
	})

	// [3/3] The retrieve class has its own counter and is not affected
	t.Run("03_RetrieveClassUnaffected", func(t *testing.T) {
		unknownID, err := secretsDomain.NewID()
		require.NoError(t, err)

		resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/secrets/"+unknownID, nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "100", resp.Header.Get("X-RateLimit-Limit"))
	})
}

// TestIntegration_OriginGuard_ShareBoundary validates the provenance check
// on secret creation: browser cross-site posts are rejected, non-browser
// clients and the published origin pass, and retrieval is never guarded.
func TestIntegration_OriginGuard_ShareBoundary(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := integrationConfig("memory")
	cfg.OriginCheckEnabled = true
	cfg.OriginExpectedHost = "burnbox.example.com"

	ctx := setupIntegrationTest(t, cfg)
	defer teardownIntegrationTest(t, ctx)

	envelope, _ := sealEnvelope(t, "origin guarded payload")
	requestBody := map[string]string{"encrypted_data": envelope}

	// [1/4] Requests without provenance headers pass (curl, scripts)
	t.Run("01_NoOriginAllowed", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, nil)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	// [2/4] The published origin passes
	t.Run("02_MatchingOriginAllowed", func(t *testing.T) {
		headers := map[string]string{"Origin": "https://burnbox.example.com"}
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, headers)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	// [3/4] A foreign origin is rejected before the store is touched
	t.Run("03_CrossOriginRejected", func(t *testing.T) {
		headers := map[string]string{"Origin": "https://evil.example.com"}
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/secrets", requestBody, headers)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var response map[string]string
		err := json.Unmarshal(body, &response)
		require.NoError(t, err)
		assert.Equal(t, "forbidden", response["error"])
	})

	// [4/4] Retrieval is read-only and never origin-guarded
	t.Run("04_RetrieveUnaffected", func(t *testing.T) {
		unknownID, err := secretsDomain.NewID()
		require.NoError(t, err)

		headers := map[string]string{"Origin": "https://evil.example.com"}
		resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/secrets/"+unknownID, nil, headers)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
