package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"siti@example.com"`
	Password string `json:"password" binding:"required" example:"rahasia123"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255" example:"Siti Rahma"`
	Email    string `json:"email" binding:"required,email,max=255" example:"siti@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"rahasia123"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Success   bool   `json:"success" example:"true"`
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn" example:"7200"`
	UserID    int64  `json:"userId" example:"1"`
	Name      string `json:"name" example:"Siti Rahma"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Siti Rahma"`
	Email string `json:"email" example:"siti@example.com"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"User registered"`
	User    UserResponse `json:"user"`
}
