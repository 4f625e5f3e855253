package dto

import "time"

// AdminLoginRequest represents the admin credential
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse carries the bearer token for the admin views
type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HealthResponse reports service and store status
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
