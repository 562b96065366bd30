package auth

import "testing"

func TestFromEnvFallsBackToDemo(t *testing.T) {
	t.Setenv("PRAXIS_USER_ID", "")

	u := FromEnv()
	if u.ID != "demo-user" {
		t.Errorf("ID = %q, want demo-user", u.ID)
	}
	if u.Email != "demo@praxis.local" {
		t.Errorf("Email = %q, want demo@praxis.local", u.Email)
	}
}

func TestFromEnvUsesEmailWhenNameUnset(t *testing.T) {
	t.Setenv("PRAXIS_USER_ID", "u-42")
	t.Setenv("PRAXIS_USER_EMAIL", "asha@example.com")
	t.Setenv("PRAXIS_USER_NAME", "")

	u := FromEnv()
	if u.ID != "u-42" {
		t.Errorf("ID = %q, want u-42", u.ID)
	}
	if u.Name != "asha@example.com" {
		t.Errorf("Name = %q, want the email fallback", u.Name)
	}
}

func TestTokenFromEnvProvider(t *testing.T) {
	t.Setenv("PRAXIS_TOKEN", "tok-123")

	if got := TokenFromEnv().Provider()(); got != "tok-123" {
		t.Errorf("token = %q, want tok-123", got)
	}
}

func TestEmptyTokenProvider(t *testing.T) {
	t.Setenv("PRAXIS_TOKEN", "")

	if got := TokenFromEnv().Provider()(); got != "" {
		t.Errorf("token = %q, want empty", got)
	}
}
