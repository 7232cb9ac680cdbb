package models

// User is a registered account. Password is kept exactly as submitted.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}
