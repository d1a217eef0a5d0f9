package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/charityhub/internal/features/auth"
	"github.com/xyz-asif/charityhub/internal/testutil"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

func TestRegister_AdminGoesToAdminCollectionOnly(t *testing.T) {
	a := testutil.NewAuth()
	ctx := context.Background()

	res, err := a.Service.Register(ctx, auth.RegisterRequest{Name: "A", Email: "a@x.com", Password: "p1", Role: "admin"})
	require.NoError(t, err)
	require.Equal(t, "/admin/dashboard", res.RedirectPath)
	require.Equal(t, auth.RoleAdmin, res.User.Role)
	require.Equal(t, 1, a.Admins.Len())
	require.Equal(t, 0, a.Users.Len())

	claims, err := a.Tokens.ValidateToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, auth.UserTypeAdmin, claims.UserType)
}

func TestRegister_DefaultsToUser(t *testing.T) {
	a := testutil.NewAuth()

	for _, role := range []string{"", "user", "superadmin"} {
		res, err := a.Service.Register(context.Background(), auth.RegisterRequest{
			Name: "U", Email: "u-" + role + "@x.com", Password: "p", Role: role,
		})
		require.NoError(t, err)
		require.Equal(t, auth.RoleUser, res.User.Role)
		require.Equal(t, "/", res.RedirectPath)
	}
	require.Equal(t, 0, a.Admins.Len())
	require.Equal(t, 3, a.Users.Len())
}

func TestRegister_SameEmailInBothCollections(t *testing.T) {
	a := testutil.NewAuth()
	ctx := context.Background()

	_, err := a.Service.Register(ctx, auth.RegisterRequest{Name: "A", Email: "a@x.com", Password: "p1", Role: "admin"})
	require.NoError(t, err)

	res, err := a.Service.Register(ctx, auth.RegisterRequest{Name: "A2", Email: "a@x.com", Password: "p2", Role: "user"})
	require.NoError(t, err)
	require.Equal(t, auth.RoleUser, res.User.Role)
}

func TestRegister_DuplicateWithinCollection(t *testing.T) {
	a := testutil.NewAuth()
	ctx := context.Background()

	_, err := a.Service.Register(ctx, auth.RegisterRequest{Name: "A", Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)

	_, err = a.Service.Register(ctx, auth.RegisterRequest{Name: "B", Email: " A@X.com ", Password: "p2"})
	require.True(t, apperrors.Is(err, apperrors.KindConflict), "got %v", err)
}

func TestRegister_Validation(t *testing.T) {
	a := testutil.NewAuth()
	_, err := a.Service.Register(context.Background(), auth.RegisterRequest{Name: "A", Email: "a@x.com"})
	require.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = a.Service.Register(context.Background(), auth.RegisterRequest{Name: "A", Email: "nope", Password: "p"})
	require.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestRegister_StoresPasswordVerbatim(t *testing.T) {
	a := testutil.NewAuth()
	res, err := a.Service.Register(context.Background(), auth.RegisterRequest{Name: "A", Email: "a@x.com", Password: " p w "})
	require.NoError(t, err)

	stored, err := a.Users.FindByID(context.Background(), res.User.ID)
	require.NoError(t, err)
	require.Equal(t, " p w ", stored.Password)
}

func TestLogin_AdminWrongPasswordNeverFallsThrough(t *testing.T) {
	a := testutil.NewAuth()
	ctx := context.Background()
	a.Admins.Put(auth.Account{Name: "A", Email: "a@x.com", Password: "admin-pw", Role: auth.RoleAdmin})
	a.Users.Put(auth.Account{Name: "U", Email: "a@x.com", Password: "user-pw", Role: auth.RoleUser})

	_, err := a.Service.Login(ctx, auth.LoginRequest{Email: "a@x.com", Password: "user-pw"})
	require.True(t, apperrors.Is(err, apperrors.KindAuthentication), "got %v", err)

	res, err := a.Service.Login(ctx, auth.LoginRequest{Email: "a@x.com", Password: "admin-pw"})
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, res.Role)
	require.Equal(t, "/admin/dashboard", res.RedirectPath)
}

func TestLogin_RegularUser(t *testing.T) {
	a := testutil.NewAuth()
	a.Users.Put(auth.Account{Name: "U", Email: "u@x.com", Password: "pw", Role: auth.RoleUser})

	res, err := a.Service.Login(context.Background(), auth.LoginRequest{Email: "U@x.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, auth.RoleUser, res.Role)
	require.Equal(t, "/", res.RedirectPath)

	claims, err := a.Tokens.ValidateToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, auth.UserTypeRegularUser, claims.UserType)
	require.Equal(t, res.User.ID, claims.UserID)
}

func TestLogin_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	a := testutil.NewAuth()
	a.Users.Put(auth.Account{Name: "U", Email: "u@x.com", Password: "pw", Role: auth.RoleUser})

	_, errUnknown := a.Service.Login(context.Background(), auth.LoginRequest{Email: "nobody@x.com", Password: "pw"})
	_, errWrong := a.Service.Login(context.Background(), auth.LoginRequest{Email: "u@x.com", Password: "PW"})

	var e1, e2 *apperrors.Error
	require.True(t, errors.As(errUnknown, &e1))
	require.True(t, errors.As(errWrong, &e2))
	require.Equal(t, apperrors.KindAuthentication, e1.Kind)
	require.Equal(t, e1.Message, e2.Message)
	require.Equal(t, "Invalid email or password", e1.Message)
}

func TestLogin_RoleCollectionMismatchIsIntegrityFault(t *testing.T) {
	a := testutil.NewAuth()
	a.Admins.Put(auth.Account{Name: "X", Email: "x@x.com", Password: "pw", Role: auth.RoleUser})

	_, err := a.Service.Login(context.Background(), auth.LoginRequest{Email: "x@x.com", Password: "pw"})
	require.True(t, apperrors.Is(err, apperrors.KindIntegrity), "got %v", err)
}

func TestLogin_StoreFailure(t *testing.T) {
	a := testutil.NewAuth()
	a.Admins.Err = errors.New("db down")

	_, err := a.Service.Login(context.Background(), auth.LoginRequest{Email: "x@x.com", Password: "pw"})
	require.True(t, apperrors.Is(err, apperrors.KindInternal))
}

func TestVerify(t *testing.T) {
	a := testutil.NewAuth()
	ctx := context.Background()
	token, account := a.TokenFor(t, auth.RoleUser, "u@x.com")

	got, err := a.Service.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, account.ID, got.ID)

	_, err = a.Service.Verify(ctx, "")
	require.True(t, apperrors.Is(err, apperrors.KindAuthentication))

	_, err = a.Service.Verify(ctx, "garbage")
	require.True(t, apperrors.Is(err, apperrors.KindAuthentication))
}

func TestVerify_AccountRemoved(t *testing.T) {
	a := testutil.NewAuth()
	token, account := a.TokenFor(t, auth.RoleAdmin, "a@x.com")
	a.Admins.Delete(account.ID)

	_, err := a.Service.Verify(context.Background(), token)
	require.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestVerify_StoredRoleChanged(t *testing.T) {
	a := testutil.NewAuth()
	token, account := a.TokenFor(t, auth.RoleAdmin, "a@x.com")
	a.Admins.SetRole(account.ID, auth.RoleUser)

	_, err := a.Service.Verify(context.Background(), token)
	require.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestVerify_RoleClaimLooksInItsOwnCollection(t *testing.T) {
	a := testutil.NewAuth()
	// a user id presented with an admin role claim is looked up among admins and not found
	user := a.Users.Put(auth.Account{Name: "U", Email: "u@x.com", Password: "pw", Role: auth.RoleUser})
	token, err := a.Tokens.GenerateToken(user.ID.Hex(), user.Email, "admin", auth.UserTypeAdmin)
	require.NoError(t, err)

	_, err = a.Service.Verify(context.Background(), token)
	require.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestVerify_UserTypeMustMatchRole(t *testing.T) {
	a := testutil.NewAuth()
	user := a.Users.Put(auth.Account{Name: "U", Email: "u@x.com", Password: "pw", Role: auth.RoleUser})
	token, err := a.Tokens.GenerateToken(user.ID.Hex(), user.Email, "user", auth.UserTypeAdmin)
	require.NoError(t, err)

	_, err = a.Service.Verify(context.Background(), token)
	require.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestVerify_UnknownRole(t *testing.T) {
	a := testutil.NewAuth()
	token, err := a.Tokens.GenerateToken("665f1c2e9b1e8a0012345678", "x@x.com", "root", "")
	require.NoError(t, err)

	_, err = a.Service.Verify(context.Background(), token)
	require.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestConfirmRole(t *testing.T) {
	a := testutil.NewAuth()
	ctx := context.Background()
	_, admin := a.TokenFor(t, auth.RoleAdmin, "a@x.com")

	_, err := a.Service.ConfirmRole(ctx, admin.ID.Hex(), auth.RoleAdmin)
	require.NoError(t, err)

	_, err = a.Service.ConfirmRole(ctx, admin.ID.Hex(), auth.RoleUser)
	require.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestCounts(t *testing.T) {
	a := testutil.NewAuth()
	a.TokenFor(t, auth.RoleAdmin, "a@x.com")
	a.TokenFor(t, auth.RoleUser, "u1@x.com")
	a.TokenFor(t, auth.RoleUser, "u2@x.com")

	admins, users, err := a.Service.Counts(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, admins)
	require.EqualValues(t, 2, users)
}
