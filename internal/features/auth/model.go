package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the literal stored on every account; each role lives in its own collection.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserType names the collection an account was read from. It travels in the token
// next to the role so both can be checked against each other.
const (
	UserTypeAdmin       = "Admin"
	UserTypeRegularUser = "RegularUser"
)

// Collection names
const (
	AdminCollection       = "admins"
	RegularUserCollection = "regularusers"
)

// Account is the shared shape of Admin and RegularUser documents.
// Passwords are stored exactly as submitted and compared byte for byte.
type Account struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AccountView is the account projection returned to clients (password excluded)
type AccountView struct {
	ID        string    `json:"id" example:"665f1c2e9b1e8a0012345678"`
	Name      string    `json:"name" example:"Asha"`
	Email     string    `json:"email" example:"asha@example.org"`
	Role      Role      `json:"role" example:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Account) View() AccountView {
	return AccountView{
		ID:        a.ID.Hex(),
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

// RegisterRequest represents the payload for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha"`
	Email    string `json:"email" binding:"required" example:"asha@example.org"`
	Password string `json:"password" binding:"required" example:"secret"`
	Role     string `json:"role" example:"user"`
}

// LoginRequest represents the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"asha@example.org"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// RegisterResponse is the data payload of a successful registration
type RegisterResponse struct {
	Token        string      `json:"token"`
	User         AccountView `json:"user"`
	RedirectPath string      `json:"redirectPath" example:"/"`
}

// LoginResponse is the data payload of a successful login
type LoginResponse struct {
	Token        string      `json:"token"`
	Role         Role        `json:"role" example:"admin"`
	RedirectPath string      `json:"redirectPath" example:"/admin/dashboard"`
	User         AccountView `json:"user"`
}

// VerifyResponse is the data payload of GET /auth/verify
type VerifyResponse struct {
	User AccountView `json:"user"`
}

// RedirectPath returns where the frontend sends an account after signing in
func RedirectPath(role Role) string {
	if role == RoleAdmin {
		return "/admin/dashboard"
	}
	return "/"
}
