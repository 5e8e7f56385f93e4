package users

// User is a registered account. The JSON form is the persisted layout of the
// users collection; the password field holds the bcrypt hash, never the
// plaintext. Users are never mutated or deleted after registration.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Designation  string `json:"designation"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}
