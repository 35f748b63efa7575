package dto

type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	UserEmail   string `json:"user_email"`
}
