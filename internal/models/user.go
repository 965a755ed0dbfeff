package models

// User is the authenticated account
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Session pairs the bearer token with the user it belongs to
type Session struct {
	Token string `json:"access_token"`
	User  User   `json:"user"`
}
