// internal/model/auth.go
package model

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
}
