package auth

import (
	"context"
	"errors"
	"time"

	"github.com/xyz-asif/charityhub/internal/pkg/jwt"
	"github.com/xyz-asif/charityhub/internal/pkg/logger"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

const invalidCredentials = "Invalid email or password"

// Service registers, logs in and verifies accounts. Every identity is resolved
// against the collection its role belongs to; a role is never trusted on its own.
type Service struct {
	admins AccountStore
	users  AccountStore
	tokens *jwt.Manager
	now    func() time.Time
}

func NewService(admins, users AccountStore, tokens *jwt.Manager) *Service {
	return &Service{
		admins: admins,
		users:  users,
		tokens: tokens,
		now:    time.Now,
	}
}

// storeFor returns the collection backing role and its user type.
func (s *Service) storeFor(role Role) (AccountStore, string, bool) {
	switch role {
	case RoleAdmin:
		return s.admins, UserTypeAdmin, true
	case RoleUser:
		return s.users, UserTypeRegularUser, true
	}
	return nil, "", false
}

// Register creates an account in the collection picked by role ("admin" or anything else -> user).
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if err := ValidateRegister(&req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	role := RoleUser
	if Role(req.Role) == RoleAdmin {
		role = RoleAdmin
	}
	store, userType, _ := s.storeFor(role)

	existing, err := store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("Failed to check existing account", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("User already exists with this email")
	}

	account := &Account{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      role,
		CreatedAt: s.now(),
	}
	if err := store.Create(ctx, account); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperrors.Conflict("User already exists with this email")
		}
		return nil, apperrors.Internal("Failed to create account", err)
	}

	token, err := s.tokens.GenerateToken(account.ID.Hex(), account.Email, string(account.Role), userType)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token", err)
	}

	logger.Info("account registered",
		logger.String("role", string(role)),
		logger.String("userId", account.ID.Hex()))

	return &RegisterResponse{
		Token:        token,
		User:         account.View(),
		RedirectPath: RedirectPath(role),
	}, nil
}

// Login checks the Admin collection first. If the email exists there, the password
// must match that record; RegularUser is only consulted when no admin has the email.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := ValidateLogin(&req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	account, role, err := s.resolveLogin(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Password != req.Password {
		return nil, apperrors.Authentication(invalidCredentials)
	}

	if account.Role != role {
		logger.Error("account role does not match its collection",
			logger.String("userId", account.ID.Hex()),
			logger.String("storedRole", string(account.Role)),
			logger.String("collectionRole", string(role)))
		return nil, apperrors.Integrity("Account data is inconsistent")
	}

	_, userType, _ := s.storeFor(role)
	token, err := s.tokens.GenerateToken(account.ID.Hex(), account.Email, string(role), userType)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token", err)
	}

	return &LoginResponse{
		Token:        token,
		Role:         role,
		RedirectPath: RedirectPath(role),
		User:         account.View(),
	}, nil
}

// resolveLogin finds the account for email in fixed priority order (Admin, then RegularUser)
// and returns the role of the collection it came from.
func (s *Service) resolveLogin(ctx context.Context, email string) (*Account, Role, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to look up account", err)
	}
	if admin != nil {
		return admin, RoleAdmin, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to look up account", err)
	}
	if user != nil {
		return user, RoleUser, nil
	}
	return nil, "", nil
}

// Verify validates a token and re-resolves its account from the collection named by the role claim.
func (s *Service) Verify(ctx context.Context, token string) (*Account, error) {
	if token == "" {
		return nil, apperrors.Authentication("Access denied. No token provided.")
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, apperrors.Authentication("Token has expired")
		}
		return nil, apperrors.Authentication("Invalid token")
	}

	role := Role(claims.Role)
	store, userType, ok := s.storeFor(role)
	if !ok {
		return nil, apperrors.Authorization("Invalid role in token")
	}
	if claims.UserType != "" && claims.UserType != userType {
		return nil, apperrors.Authorization("Token role does not match account type")
	}

	account, err := store.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up account", err)
	}
	if account == nil {
		return nil, apperrors.NotFound("User not found")
	}
	if account.Role != role {
		return nil, apperrors.Authorization("Role mismatch")
	}

	return account, nil
}

// ConfirmRole re-queries the collection for role and checks the account is still there
// with that role. Anything else is Forbidden.
func (s *Service) ConfirmRole(ctx context.Context, id string, role Role) (*Account, error) {
	store, _, ok := s.storeFor(role)
	if !ok {
		return nil, apperrors.Authorization("Access denied")
	}

	account, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up account", err)
	}
	if account == nil || account.Role != role {
		return nil, apperrors.Authorization("Access denied. Account not found for this role.")
	}
	return account, nil
}

// Counts returns the number of accounts in each collection
func (s *Service) Counts(ctx context.Context) (admins, users int64, err error) {
	if admins, err = s.admins.Count(ctx); err != nil {
		return 0, 0, err
	}
	if users, err = s.users.Count(ctx); err != nil {
		return 0, 0, err
	}
	return admins, users, nil
}
