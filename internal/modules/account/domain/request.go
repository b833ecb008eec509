package domain

// RequestSignup model
type RequestSignup struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RequestLogin model
type RequestLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FilterProfile query param of user profile
type FilterProfile struct {
	ID string `json:"id" validate:"required"`
}
