package users

// User is a stored credential record. The password hash is serialized under
// the "password" key, matching the historical users.json layout.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// PublicUser is the projection of a User that is safe to return to callers.
// The password hash is never included.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the public-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
