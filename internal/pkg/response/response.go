package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/charityhub/internal/pkg/logger"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

// APIResponse is the envelope used for every JSON body the API returns
type APIResponse struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"statusCode" example:"200"`
	Message    string      `json:"message,omitempty" example:"ok"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty" example:"Invalid token"`
	Code       string      `json:"code,omitempty" example:"AUTH_INVALID_TOKEN"`
}

// PaginatedData is the data payload of a paginated list response
type PaginatedData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total" example:"25"`
	Limit int         `json:"limit" example:"10"`
	Page  int         `json:"page" example:"1"`
	Pages int         `json:"pages" example:"3"`
}

// Success sends a 200 OK response with data and an optional message
func Success(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    first(message),
		Data:       data,
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusCreated, APIResponse{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    first(message),
		Data:       data,
	})
}

// Paginated sends a paginated response
func Paginated(c *gin.Context, items interface{}, total int64, limit int, page ...int) {
	pageNum := 1
	if len(page) > 0 {
		pageNum = page[0]
	}
	pages := 1
	if limit > 0 && total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		StatusCode: http.StatusOK,
		Data: PaginatedData{
			Items: items,
			Total: total,
			Limit: limit,
			Page:  pageNum,
			Pages: pages,
		},
	})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	c.JSON(statusCode, APIResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Code:       first(errorCode),
	})
}

// ErrorWithData sends an error response carrying extra data (rate limit details etc.)
func ErrorWithData(c *gin.Context, statusCode int, message string, data interface{}, errorCode ...string) {
	c.JSON(statusCode, APIResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Code:       first(errorCode),
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusForbidden, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// ServiceUnavailable sends a 503 Service Unavailable error
func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// BindJSONError handles JSON decode and binding-tag errors in request body
func BindJSONError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success:    false,
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request format",
		Error:      err.Error(),
		Code:       "INVALID_REQUEST",
	})
}

// ValidationFailed handles validation errors
func ValidationFailed(c *gin.Context, message string) {
	BadRequest(c, message, "VALIDATION_FAILED")
}

// AuthenticationError handles authentication failures
func AuthenticationError(c *gin.Context, message string) {
	Unauthorized(c, message, "AUTH_FAILED")
}

// AuthorizationError handles authorization failures
func AuthorizationError(c *gin.Context, message string) {
	Forbidden(c, message, "FORBIDDEN")
}

// StatusFor maps an error kind to its HTTP status code
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuthentication:
		return http.StatusUnauthorized
	case apperrors.KindAuthorization:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the envelope for an error returned by a service.
// Causes of server-side failures are logged, never sent to the client.
func FromError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := StatusFor(kind)

	message := "Internal server error"
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		path := ""
		if c.Request != nil {
			path = c.Request.URL.Path
		}
		logger.Error("request failed",
			logger.String("path", path),
			logger.String("kind", string(kind)),
			logger.Err(err))
	}

	Error(c, status, message, string(kind))
}

func first(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
