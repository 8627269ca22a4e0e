package dto

// AuthRequest describes username/password payload.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the short JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
