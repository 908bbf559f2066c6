package dto

// UserRegisterRequest payload for new accounts.
type UserRegisterRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	StreetAddress string `json:"streetAddress"`
	Password      string `json:"password" validate:"required,min=6"`
}

// UserUpdateRequest payload for account changes; empty fields are left
// untouched.
type UserUpdateRequest struct {
	Name          string `json:"name"`
	StreetAddress string `json:"streetAddress"`
	Password      string `json:"password" validate:"omitempty,min=6"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
