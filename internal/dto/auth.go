package dto

// RegisterRequest represents the request payload for account creation.
// There is no password: accounts are profiles, not credentials.
type RegisterRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Preferences string `json:"preferences"`
}

// LoginRequest represents the request payload for the login stub.
type LoginRequest struct {
	Email string `json:"email"`
}
