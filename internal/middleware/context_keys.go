package middleware

// ctxKey is unexported so context values set here cannot collide with keys
// from other packages.
type ctxKey string

const (
	loggerKey      ctxKey = "logger"
	requestIDKey   ctxKey = "requestID"
	currentUserKey        = "currentUser"
	sessionUserKey        = "sessionUser"
)
