package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	iauth "github.com/zhafranafif/Assignment4-ZhafranAfif/internal/auth"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status        any    `json:"status"`
	Message       string `json:"message"`
	Error         string `json:"error"`
	TransactionID string `json:"transaction_id"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func okHandler(c *gin.Context) {
	response.Success(c, gin.H{"ok": true})
}

func TestTransactionGeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(Transaction())
	r.GET("/ping", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	env := decodeEnvelope(t, w)
	require.Regexp(t, regexp.MustCompile(`^A302\d{15}0$`), env.TransactionID)
}

func TestTransactionEchoesHeader(t *testing.T) {
	r := gin.New()
	r.Use(Transaction())
	r.GET("/ping", okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TransactionHeader, "client-trx-7")
	r.ServeHTTP(w, req)

	env := decodeEnvelope(t, w)
	require.Equal(t, "client-trx-7", env.TransactionID)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *iauth.JWTService) {
	t.Helper()

	jwtSvc, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)

	r := gin.New()
	r.Use(Transaction())
	r.GET("/protected", Auth(jwtSvc), okHandler)
	return r, jwtSvc
}

func TestAuthMissingToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	require.Equal(t, float64(http.StatusUnauthorized), env.Status)
	require.Equal(t, "No token provided", env.Message)
}

func TestAuthMalformedHeader(t *testing.T) {
	r, jwtSvc := newAuthRouter(t)

	token, err := jwtSvc.GenerateAccessToken(5)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token) // missing Bearer prefix
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "No token provided", decodeEnvelope(t, w).Message)
}

func TestAuthInvalidToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	require.Equal(t, "Invalid token provided", env.Message)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthValidTokenPropagatesIdentity(t *testing.T) {
	jwtSvc, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)

	r := gin.New()
	r.Use(Transaction())
	r.GET("/protected", Auth(jwtSvc), func(c *gin.Context) {
		userID, ok := c.Get(CtxUserIDKey)
		require.True(t, ok)
		response.Success(c, gin.H{"user_id": userID})
	})

	token, err := jwtSvc.GenerateAccessToken(5)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":5`)
}

func TestRecoveryConvertsPanicTo500(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(), Transaction())
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	require.Equal(t, float64(http.StatusInternalServerError), env.Status)
	require.NotContains(t, w.Body.String(), "kaboom")
}

func TestNotFoundHandler(t *testing.T) {
	r := gin.New()
	r.Use(Transaction())
	r.NoRoute(NotFoundHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "No route matched with those values", decodeEnvelope(t, w).Message)
}
