package models

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User roles. A tourist initiates connection requests, a guide receives them.
const (
	RoleTourist = "tourist"
	RoleGuide   = "guide"
)

type User struct {
	gorm.Model      `json:"-"`
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name"`
	Email           string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password        string `json:"-"`                        // Store hashed password, ignore for JSON serialization
	Role            string `json:"role" gorm:"type:varchar(20);index"`
	Phone           string `json:"phone"`
	City            string `json:"city" gorm:"index"`
	Bio             string `json:"bio"`
	Languages       string `json:"languages"`                  // comma-separated, e.g. "Marathi,Hindi,English"
	ExperienceYears int    `json:"experience_years,omitempty"` // guides only
}

type CreateUserRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Role            string `json:"role" validate:"required,oneof=tourist guide"`
	Phone           string `json:"phone" validate:"required,min=10,max=15"`
	City            string `json:"city" validate:"required"`
	Bio             string `json:"bio,omitempty"`
	Languages       string `json:"languages,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty" validate:"min=0,max=60"`
}

type UpdateUserRequest struct {
	Name            string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	City            string `json:"city,omitempty"`
	Bio             string `json:"bio,omitempty"`
	Languages       string `json:"languages,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty" validate:"min=0,max=60"`
}

// UserCompact is the denormalized user summary embedded in connection and
// notification responses.
type UserCompact struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	City     string `json:"city"`
	Phone    string `json:"phone,omitempty"`
	ChatLink string `json:"chat_link,omitempty"`
}

// ToCompact builds the embeddable summary. Chat happens over WhatsApp
// deep-links only, so the link is derived from the stored phone number.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Name:     u.Name,
		Role:     u.Role,
		City:     u.City,
		Phone:    u.Phone,
		ChatLink: WhatsAppLink(u.Phone),
	}
}

// WhatsAppLink converts a phone number to a wa.me deep-link, keeping digits
// only. Returns "" when the number has no digits.
func WhatsAppLink(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + b.String()
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
