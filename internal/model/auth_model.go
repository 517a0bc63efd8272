package model

// User is the profile snapshot the backend returns on login/register; the
// storefront mirrors it into the session the way the client kept it in local
// storage.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// LoginResult is the token + user pair handed back to the caller.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
