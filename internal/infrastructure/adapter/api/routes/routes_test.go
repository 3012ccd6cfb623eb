package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	domainerr "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/handler"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/database"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/logger"
	timeprovider "github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/time"
	securitymocks "github.com/romeopeter/payment-orchestrator/mocks/port/security"
	usecasemocks "github.com/romeopeter/payment-orchestrator/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken = "valid-token"
	customerID = uint64(42)
)

type fakeDatabase struct{ err error }

func (p fakeDatabase) Ping(context.Context) error { return p.err }

func (p fakeDatabase) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 3, InUse: 1, IdleConnections: 2, MaxOpenConnections: 25}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

type testServer struct {
	router       *gin.Engine
	handler      http.Handler
	auth         *usecasemocks.MockAuthUseCase
	transactions *usecasemocks.MockTransactionUseCase
	tokens       *securitymocks.MockTokenIssuer
}

func newTestServer(t *testing.T, dbErr error) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	s := &testServer{
		router:       gin.New(),
		auth:         usecasemocks.NewMockAuthUseCase(t),
		transactions: usecasemocks.NewMockTransactionUseCase(t),
		tokens:       securitymocks.NewMockTokenIssuer(t),
	}

	SetupMiddlewares(s.router, log, timeprovider.NewRealTimeProvider())
	SetupRoutes(s.router, Handlers{
		Auth:        handler.NewAuthHandler(s.auth, log),
		Transaction: handler.NewTransactionHandler(s.transactions, log),
		Health:      handler.NewHealthHandler(fakeDatabase{err: dbErr}, []string{"moniepoint", "paystack"}, log),
	}, s.tokens, log)
	s.handler = NewHandler(s.router, []string{"https://shop.example.com"})

	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		s.tokens.EXPECT().Validate(validToken).Return(customerID, nil).Once()
		req.Header.Set("Authorization", "Bearer "+validToken)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func sampleTransaction() *entity.Transaction {
	created := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	return &entity.Transaction{
		ID:         1,
		GatewayRef: "txn_0a1b2c3d4e",
		Amount:     500000,
		Gateway:    "paystack",
		Status:     entity.StatusPending,
		Metadata:   map[string]any{"order": "A1"},
		CustomerID: customerID,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestRegister(t *testing.T) {
	s := newTestServer(t, nil)

	s.auth.EXPECT().Register(mock.Anything, "ada@example.com", "correct-horse").
		Return(&entity.User{ID: 7, Email: "ada@example.com", PasswordHash: "hash"}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "ada@example.com", "password": "correct-horse"}, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, env.Status)
	assert.Equal(t, "User registered", env.Message)
	assert.NotContains(t, string(env.Data), "hash")
	assert.Contains(t, string(env.Data), `"email":"ada@example.com"`)
}

func TestRegister_Duplicate(t *testing.T) {
	s := newTestServer(t, nil)

	s.auth.EXPECT().Register(mock.Anything, "ada@example.com", "correct-horse").
		Return(nil, domainerr.ErrDuplicateUser)

	rec, env := s.do(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "ada@example.com", "password": "correct-horse"}, false)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, env.Status)
	assert.Equal(t, domainerr.CodeDuplicateUser, env.Code)
}

func TestRegister_MalformedBody(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodPost, "/api/auth/register", `{"email":`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerr.CodeInvalidRequest, env.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, nil)

	expires := time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)
	s.auth.EXPECT().Login(mock.Anything, "ada@example.com", "correct-horse").
		Return(&usecase.LoginResult{AccessToken: "jwt", ExpiresAt: expires, User: &entity.User{ID: 7, Email: "ada@example.com"}}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ada@example.com", "password": "correct-horse"}, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "jwt", data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t, nil)

	s.auth.EXPECT().Login(mock.Anything, "ada@example.com", "wrong-password").
		Return(nil, domainerr.ErrInvalidCredentials)

	rec, env := s.do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ada@example.com", "password": "wrong-password"}, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerr.CodeInvalidCredentials, env.Code)
}

func TestMe(t *testing.T) {
	s := newTestServer(t, nil)

	s.auth.EXPECT().Me(mock.Anything, customerID).Return(&entity.User{ID: customerID, Email: "ada@example.com"}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/auth/me", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"id":42`)
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	s := newTestServer(t, nil)

	rec, env := s.do(t, http.MethodGet, "/api/transactions/", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerr.CodeUnauthorized, env.Code)

	s.tokens.EXPECT().Validate("expired").Return(0, domainerr.ErrUnauthorized)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTransaction(t *testing.T) {
	s := newTestServer(t, nil)

	s.transactions.EXPECT().Create(mock.Anything, customerID, usecase.CreateTransactionRequest{
		Amount:   500000,
		Gateway:  "paystack",
		Metadata: map[string]any{"order": "A1"},
	}).Return(sampleTransaction(), nil)

	rec, env := s.do(t, http.MethodPost, "/api/transactions/", map[string]any{
		"amount":       500000,
		"gateway":      "paystack",
		"txn_metadata": map[string]any{"order": "A1"},
	}, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Transaction created", env.Message)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "txn_0a1b2c3d4e", data["gateway_ref"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "5000.00", data["amount_display"])
}

func TestCreateTransaction_UnsupportedGateway(t *testing.T) {
	s := newTestServer(t, nil)

	s.transactions.EXPECT().Create(mock.Anything, customerID, mock.Anything).
		Return(nil, domainerr.ErrUnsupportedGateway)

	rec, env := s.do(t, http.MethodPost, "/api/transactions/", map[string]any{"amount": 100, "gateway": "stripe"}, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerr.CodeUnsupportedGateway, env.Code)
}

func TestListTransactions(t *testing.T) {
	s := newTestServer(t, nil)

	newer := sampleTransaction()
	newer.GatewayRef = "txn_ffffffffff"
	s.transactions.EXPECT().List(mock.Anything, customerID).
		Return([]*entity.Transaction{newer, sampleTransaction()}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/transactions/", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var data []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 2)
	assert.Equal(t, "txn_ffffffffff", data[0]["gateway_ref"])
}

func TestInitiate(t *testing.T) {
	s := newTestServer(t, nil)

	txn := sampleTransaction()
	txn.Status = "success"
	s.transactions.EXPECT().Initiate(mock.Anything, customerID, usecase.InitiateRequest{
		Amount:  500000,
		Gateway: "paystack",
		Bank:    map[string]any{"code": "057", "account_number": "0000000000"},
	}).Return(&usecase.ReconciliationResult{
		Transaction:     txn,
		GatewayStatus:   "success",
		GatewayResponse: gateway.Response{"status": true, "data": map[string]any{"status": "success"}},
	}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/transactions/initiate", map[string]any{
		"amount":  500000,
		"gateway": "paystack",
		"bank":    map[string]any{"code": "057", "account_number": "0000000000"},
	}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "txn_0a1b2c3d4e", data["internal_gateway_ref"])
	assert.Equal(t, "success", data["gateway_status"])
	assert.NotNil(t, data["gateway_response"])
}

func TestInitiate_GatewayFailure(t *testing.T) {
	s := newTestServer(t, nil)

	gwErr := domainerr.NewGatewayError("paystack", "initialize_charge", 503, "upstream down", nil)
	s.transactions.EXPECT().Initiate(mock.Anything, customerID, mock.Anything).
		Return(nil, domainerr.NewTransactionError("txn_0a1b2c3d4e", customerID, "paystack", "initialize_charge", gwErr))

	rec, env := s.do(t, http.MethodPost, "/api/transactions/initiate", map[string]any{"amount": 100, "gateway": "paystack"}, true)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, domainerr.CodeGatewayTransport, env.Code)
	assert.NotContains(t, env.Message, "upstream down")
}

func TestVerify(t *testing.T) {
	s := newTestServer(t, nil)

	s.transactions.EXPECT().Verify(mock.Anything, customerID, "txn_0a1b2c3d4e").
		Return(&usecase.ReconciliationResult{
			Transaction:     sampleTransaction(),
			GatewayResponse: gateway.Response{"requestSuccessful": true},
		}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/transactions/verify/txn_0a1b2c3d4e", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Nil(t, data["gateway_status"])
	assert.Equal(t, "pending", data["status"])
}

func TestVerify_NotOwned(t *testing.T) {
	s := newTestServer(t, nil)

	s.transactions.EXPECT().Verify(mock.Anything, customerID, "txn_0a1b2c3d4e").
		Return(nil, domainerr.ErrTransactionNotFound)

	rec, env := s.do(t, http.MethodGet, "/api/transactions/verify/txn_0a1b2c3d4e", nil, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestVerify_StoredGatewayNotConfigured(t *testing.T) {
	s := newTestServer(t, nil)

	s.transactions.EXPECT().Verify(mock.Anything, customerID, "txn_0a1b2c3d4e").
		Return(nil, fmt.Errorf("%w: transaction txn_0a1b2c3d4e uses \"moniepoint\"", domainerr.ErrGatewayNotConfigured))

	rec, env := s.do(t, http.MethodGet, "/api/transactions/verify/txn_0a1b2c3d4e", nil, true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, domainerr.CodeGatewayNotConfigured, env.Code)
	assert.NotContains(t, env.Message, "moniepoint")
}

func TestSubmitOTP_IgnoresGatewayField(t *testing.T) {
	s := newTestServer(t, nil)

	s.transactions.EXPECT().SubmitOTP(mock.Anything, customerID, usecase.SubmitOTPRequest{
		OTP:       "123456",
		Reference: "txn_0a1b2c3d4e",
	}).Return(&usecase.ReconciliationResult{
		Transaction:     sampleTransaction(),
		GatewayStatus:   "send_otp",
		GatewayResponse: gateway.Response{"data": map[string]any{"status": "send_otp"}},
	}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/transactions/submit-otp", map[string]any{
		"otp":       "123456",
		"reference": "txn_0a1b2c3d4e",
		"gateway":   "moniepoint",
	}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP submitted successfully", env.Message)
}

func TestHealth(t *testing.T) {
	rec, env := newTestServer(t, nil).do(t, http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	var health handler.HealthResponse
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "up", health.Database)
	assert.Equal(t, []string{"moniepoint", "paystack"}, health.Gateways)
	assert.Equal(t, 1, health.Pool.InUse)
	assert.Equal(t, 25, health.Pool.MaxOpen)

	rec, _ = newTestServer(t, errors.New("connection refused")).do(t, http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNoRoute(t *testing.T) {
	rec, env := newTestServer(t, nil).do(t, http.MethodGet, "/api/unknown", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	t.Run("Allowed origin on an API call", func(t *testing.T) {
		s := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "X-Request-Id", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("Unknown origin gets no CORS headers", func(t *testing.T) {
		s := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight is answered before auth", func(t *testing.T) {
		s := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodOptions, "/api/transactions/initiate", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		// No token was sent, so reaching the auth middleware would have produced 401
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.MethodPost, rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("Preflight for a disallowed method", func(t *testing.T) {
		s := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodOptions, "/api/transactions/", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
