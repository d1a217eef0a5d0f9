package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

func TestSuccessAndErrorResponses(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Test Success
	Success(c, map[string]string{"foo": "bar"}, "ok")
	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(200), body["statusCode"]) // json numbers decode to float64
	require.Equal(t, "ok", body["message"])
	require.Contains(t, body, "data")

	// Test Error
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")
	require.Equal(t, 400, w.Code)
	var bodyErr map[string]any
	err = json.Unmarshal(w.Body.Bytes(), &bodyErr)
	require.NoError(t, err)
	require.Equal(t, false, bodyErr["success"])
	require.Equal(t, float64(400), bodyErr["statusCode"])
	require.Equal(t, "bad request", bodyErr["message"])
	require.Equal(t, "BAD_REQ", bodyErr["code"])
}

func TestPaginatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	items := []map[string]any{{"id": 1}, {"id": 2}}
	Paginated(c, items, 2, 10, 1)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(200), body["statusCode"])
	data := body["data"].(map[string]any)
	require.Contains(t, data, "items")
	require.Equal(t, float64(2), data["total"].(float64))
	require.Equal(t, float64(10), data["limit"].(float64))
	require.Equal(t, float64(1), data["page"].(float64))
}

func TestFromError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
		code    string
	}{
		{apperrors.Validation("bad input"), 400, "bad input", "VALIDATION_ERROR"},
		{apperrors.Authentication("Invalid email or password"), 401, "Invalid email or password", "AUTHENTICATION_ERROR"},
		{apperrors.Authorization("Access denied"), 403, "Access denied", "AUTHORIZATION_ERROR"},
		{apperrors.NotFound("User not found"), 404, "User not found", "NOT_FOUND"},
		{apperrors.Conflict("already exists"), 409, "already exists", "CONFLICT"},
		{apperrors.Integrity("Role mismatch"), 500, "Role mismatch", "INTEGRITY_FAULT"},
		{errors.New("boom"), 500, "Internal server error", "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/x", nil)

		FromError(c, tc.err)

		require.Equal(t, tc.status, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, false, body["success"])
		require.Equal(t, tc.message, body["message"])
		require.Equal(t, tc.code, body["code"])
	}
}

func TestFromError_HidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/x", nil)

	FromError(c, apperrors.Internal("Failed to save", errors.New("connection refused")))

	require.Equal(t, 500, w.Code)
	require.NotContains(t, w.Body.String(), "connection refused")
	require.Contains(t, w.Body.String(), "Failed to save")
}
