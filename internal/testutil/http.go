package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/charityhub/internal/features/auth"
	"github.com/xyz-asif/charityhub/internal/pkg/jwt"
)

// Auth bundles an auth service backed by in-memory collections.
type Auth struct {
	Admins  *AccountStore
	Users   *AccountStore
	Tokens  *jwt.Manager
	Service *auth.Service
}

func NewAuth() *Auth {
	admins, users := NewAccountStore(), NewAccountStore()
	tokens := jwt.NewManager(jwt.DefaultConfig("test-secret"))
	return &Auth{
		Admins:  admins,
		Users:   users,
		Tokens:  tokens,
		Service: auth.NewService(admins, users, tokens),
	}
}

// TokenFor plants an account in the collection for role and returns a token for it.
func (a *Auth) TokenFor(t *testing.T, role auth.Role, email string) (string, auth.Account) {
	t.Helper()
	store, userType := a.Users, auth.UserTypeRegularUser
	if role == auth.RoleAdmin {
		store, userType = a.Admins, auth.UserTypeAdmin
	}
	account := store.Put(auth.Account{Name: "Test", Email: email, Password: "pw", Role: role})
	token, err := a.Tokens.GenerateToken(account.ID.Hex(), account.Email, string(role), userType)
	require.NoError(t, err)
	return token, account
}

// NewRouter returns a gin engine in test mode
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// Do performs a request against h. body is JSON encoded unless it is nil or an io.Reader.
func Do(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Body decodes the JSON envelope of a response
func Body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// Data returns the "data" object of a response envelope
func Data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := Body(t, w)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// NewRecorder returns a fresh response recorder
func NewRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
