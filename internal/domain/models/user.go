package models

import "time"

// Credential is the storage-owned login record. The hash never leaves the
// auth service.
type Credential struct {
	UserID       int64
	UserName     string
	PasswordHash string
	Role         int
	IsActive     bool
}

type UserDetails struct {
	UserID         int64     `json:"userId"`
	Role           int       `json:"role"`
	Name           string    `json:"name"`
	UserName       string    `json:"userName"`
	EmailID        string    `json:"emailId"`
	PhoneNumber    string    `json:"phoneNumber"`
	ProfilePicture string    `json:"profilePicture"`
	IsAdmin        bool      `json:"isAdmin"`
	CreatedDate    time.Time `json:"createdDate"`
}

// Registration is the multipart register form, minus the picture file.
type Registration struct {
	Name         string `form:"name"`
	UserName     string `form:"userName"`
	Email        string `form:"email"`
	Password     string `form:"password"`
	PhoneNumber  string `form:"phoneNumber"`
	DepartmentID int64  `form:"departmentId"`
}

// UserUpdate carries profile edits. Password is optional; blank means keep.
type UserUpdate struct {
	UserID      int64  `form:"userId"`
	UserName    string `form:"userName"`
	Name        string `form:"name"`
	EmailID     string `form:"emailId"`
	PhoneNumber string `form:"phoneNumber"`
	Password    string `form:"password"`
}

// RecentUser rows carry a running total so the dashboard widget can show
// "5 of N" without a second query.
type RecentUser struct {
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedDate    time.Time `json:"createdDate"`
	TotalUsers     int       `json:"totalUsers"`
}
