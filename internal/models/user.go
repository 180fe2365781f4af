package models

// User represents a guest account. There are no credentials: login is a
// stub that resolves or fabricates a profile from an email address.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	DateCreated string `json:"dateCreated"`
	Preferences string `json:"preferences"`
}
