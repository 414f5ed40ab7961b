package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName     string    `json:"firstName" gorm:"column:first_name;type:varchar(100);not null"`
	LastName      string    `json:"lastName" gorm:"column:last_name;type:varchar(100);not null"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	MobileNumber  string    `json:"mobileNumber" gorm:"column:mobile_number;type:varchar(20);not null"`
	PasswordHash  string    `json:"-" gorm:"column:password_hash;type:varchar(255)"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);default:'local'"`
	GoogleID      *string   `json:"-" gorm:"column:google_id;type:varchar(255);uniqueIndex:idx_users_google_id,where:google_id IS NOT NULL"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:false"`
	Avatar        *string   `json:"avatar,omitempty" gorm:"type:text"`
	Status        string    `json:"status" gorm:"type:varchar(50);default:'active';index"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data. This exact shape is what gets
// serialized into the user_data cookie, so session.Refresh depends on it.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		CreatedAt:    u.CreatedAt,
	}
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// SignupRequest for account creation. Field checks run in the controller so
// the first violation found is the one surfaced to the user.
type SignupRequest struct {
	FirstName    string `json:"firstName" example:"John"`
	LastName     string `json:"lastName" example:"Doe"`
	Email        string `json:"email" example:"john.doe@example.com"`
	MobileNumber string `json:"mobileNumber" example:"9876543210"`
	Password     string `json:"password"`
}

// LoginRequest for email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"john.doe@example.com"`
	Password string `json:"password" binding:"required"`
}
