package auth

import "os"

// User identifies the signed-in learner. Authentication itself lives in
// the third-party provider; the client only carries the resulting identity
// and bearer token.
type User struct {
	ID    string
	Email string
	Name  string
}

// Token is the bearer token attached to backend requests. Empty when the
// session has no token (demo identity).
type Token string

// TokenFromEnv resolves the bearer token from the environment.
func TokenFromEnv() Token {
	return Token(os.Getenv("PRAXIS_TOKEN"))
}

// Provider adapts the token for the API client, which re-reads it per
// request.
func (t Token) Provider() func() string {
	return func() string { return string(t) }
}

// FromEnv resolves the current user from the environment, falling back to
// the demo identity used before sign-in is configured.
func FromEnv() User {
	u := User{
		ID:    os.Getenv("PRAXIS_USER_ID"),
		Email: os.Getenv("PRAXIS_USER_EMAIL"),
		Name:  os.Getenv("PRAXIS_USER_NAME"),
	}
	if u.ID == "" {
		return DemoUser()
	}
	if u.Name == "" {
		u.Name = u.Email
	}
	return u
}

// DemoUser returns the built-in demo identity.
func DemoUser() User {
	return User{
		ID:    "demo-user",
		Email: "demo@praxis.local",
		Name:  "Demo Student",
	}
}
