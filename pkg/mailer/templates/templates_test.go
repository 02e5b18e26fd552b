package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBrand = Brand{AppName: "Auth", CompanyName: "Acme", SupportURL: "https://acme.test/help"}

func TestRender_Welcome(t *testing.T) {
	data := NewWelcomeData(testBrand, "Alice", "alice@example.com", []string{"client", "follower"})

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Auth, Alice", subject)
	assert.Contains(t, text, "Roles: client, follower")
	assert.Contains(t, text, "https://acme.test/help")
	assert.Contains(t, html, "<strong>alice@example.com</strong>")
	assert.NotContains(t, text, "<no value>")
}

func TestRender_LoginNotification(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	data := NewLoginNotificationData(testBrand, "Alice", "alice@example.com",
		WithIP(" 10.0.0.1 "), WithUserAgent("curl/8"), WithTime(at))

	subject, text, html, err := Render(LoginNotification, data)
	require.NoError(t, err)
	assert.Equal(t, "New sign-in to your Auth", subject)
	assert.Contains(t, text, "IP address: 10.0.0.1")
	assert.Contains(t, text, "01 March 2026, 10:30 UTC")
	assert.Contains(t, html, "curl/8")
}

func TestRender_FallbacksAndEscaping(t *testing.T) {
	data := NewLoginNotificationData(Brand{AppName: "Auth"}, "<b>Eve</b>", "eve@example.com")

	_, text, html, err := Render(LoginNotification, data)
	require.NoError(t, err)
	assert.Contains(t, text, "IP address: unknown")
	assert.Contains(t, text, "Auth")
	assert.NotContains(t, html, "<b>Eve</b>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("forgot_password", map[string]any{})
	assert.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "x", defaultFn("x", ""))
	assert.Equal(t, "x", defaultFn("x", nil))
	assert.Equal(t, "x", defaultFn("x", 0))
	assert.Equal(t, "v", defaultFn("x", "v"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a, b", join(", ", []any{"a", "b"}))
	assert.Equal(t, "a", join(", ", []string{"a"}))
	assert.Equal(t, "", join(", ", 3))
}
