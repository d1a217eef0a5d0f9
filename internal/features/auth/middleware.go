package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/charityhub/internal/middleware"
	"github.com/xyz-asif/charityhub/internal/pkg/response"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

// ContextAccount holds the *Account resolved by Authenticate
const ContextAccount = "account"

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	return fields[1], true
}

// Authenticate verifies the bearer token and stores the freshly resolved account in the context.
func Authenticate(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Access denied. No token provided.", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		token, ok := BearerToken(header)
		if !ok {
			response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
			c.Abort()
			return
		}

		account, err := svc.Verify(c.Request.Context(), token)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAccount, account)
		c.Set(middleware.UserIDKey, account.ID.Hex())
		c.Next()
	}
}

// AuthorizeAdmin must run after Authenticate
func AuthorizeAdmin(svc *Service) gin.HandlerFunc {
	return authorize(svc, RoleAdmin, "Access denied. Admin privileges required.")
}

// AuthorizeUser must run after Authenticate
func AuthorizeUser(svc *Service) gin.HandlerFunc {
	return authorize(svc, RoleUser, "Access denied. User privileges required.")
}

// authorize checks the resolved role and then re-queries the role's collection,
// so an account removed or altered after its token was issued is refused.
func authorize(svc *Service, role Role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := CurrentAccount(c)
		if !ok {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		if account.Role != role {
			response.AuthorizationError(c, message)
			c.Abort()
			return
		}

		if _, err := svc.ConfirmRole(c.Request.Context(), account.ID.Hex(), role); err != nil {
			if apperrors.Is(err, apperrors.KindAuthorization) {
				response.AuthorizationError(c, message)
			} else {
				response.FromError(c, err)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentAccount returns the account stored by Authenticate
func CurrentAccount(c *gin.Context) (*Account, bool) {
	val, exists := c.Get(ContextAccount)
	if !exists {
		return nil, false
	}
	account, ok := val.(*Account)
	return account, ok && account != nil
}
