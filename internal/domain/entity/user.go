package entity

// UserProfile is the identity record of the user operating the client. Read-only.
type UserProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
