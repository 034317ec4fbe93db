package auth

// Principal is the minimal verified identity carried through a request after
// successful authentication. Username is populated when the subject has been
// re-resolved against the user directory.
type Principal struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}
