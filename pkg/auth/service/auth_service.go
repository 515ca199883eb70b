package service

import "mantrix/entities"

// TokenResponse is the login/register payload.
type TokenResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

type AuthService interface {
	Register(email, password string) (*TokenResponse, error)
	Login(email, password string) (*TokenResponse, error)
	GetUser(id string) (*entities.User, error)
}
