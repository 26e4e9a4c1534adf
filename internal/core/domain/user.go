package domain

// User is an account able to sign in to the dashboard. Password holds the
// stored credential (a bcrypt hash when created through the user use case)
// and is never serialized.
type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

// NewUser is a registration request. Password is bounded in bytes because
// bcrypt rejects inputs longer than 72 bytes.
type NewUser struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

func (n NewUser) Build(id string) User {
	return User{ID: id, Username: n.Username, Password: n.Password}
}
