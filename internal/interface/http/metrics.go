package handlers

import "expvar"

// authEvents is published at /debug/vars under "auth_events".
var authEvents = expvar.NewMap("auth_events")

const (
	evRegisterOK      = "register_ok"
	evRegisterInvalid = "register_invalid"
	evLoginOK         = "login_ok"
	evLoginFailed     = "login_failed"
	evLogoutOK        = "logout_ok"
	evRoleChanged     = "role_changed"
)

func count(event string) { authEvents.Add(event, 1) }
