package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64         `json:"id" db:"id" example:"1"`
	Email     string        `json:"email" db:"email" example:"student@college.edu"`
	Password  string        `json:"-" db:"password"` // Hashed, excluded from JSON
	FirstName string        `json:"firstName" db:"first_name" example:"Ravi"`
	LastName  string        `json:"lastName" db:"last_name" example:"Kumar"`
	Role      RoleType      `json:"role" db:"role" example:"STUDENT"`
	Status    AccountStatus `json:"status" db:"status" example:"ACTIVE"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// RefreshToken defines a stored refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"-" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AdminProfile defines the admin profile based on the 'admin_profiles' table
type AdminProfile struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	Designation string `json:"designation" db:"designation"`
	Phone       string `json:"phone" db:"phone"`
	User        *User  `json:"user,omitempty"` // Relation, no db tag
}
