package models

// UserProfile is the demo profile served by /api/users/profile.
type UserProfile struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
