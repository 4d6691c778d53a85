package auth

// User carries the account fields needed for login and session identity.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	AvatarURL    *string
	Role         string
	PasswordHash string
}
