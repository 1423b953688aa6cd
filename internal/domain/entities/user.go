package entities

import (
	"time"
)

// UserType represents the role of a portal account
type UserType string

const (
	UserTypePatient UserType = "patient"
	UserTypeDoctor  UserType = "doctor"
	UserTypeStudent UserType = "student"
	UserTypeAdmin   UserType = "admin"
)

// User represents a portal account
type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email,omitempty" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	UserType  UserType  `json:"user_type" db:"user_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Session is the server-side login state kept in the session store
type Session struct {
	UserID   string   `json:"user_id"`
	UserType UserType `json:"user_type"`
}
