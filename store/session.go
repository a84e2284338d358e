package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinepass-cli/model"
)

const sessionFile = "session.json"

// Session is the persisted login state: the bearer token plus the user it
// belongs to, kept so the TUI can greet without a round trip.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// SaveSession persists the session to the user config dir.
func SaveSession(session Session) error {
	return writeFile(sessionFile, session)
}

// LoadSession returns the stored session, or nil when none exists or the
// token has already expired. Expired sessions are removed on sight so the
// next launch goes straight to login. The token signature is NOT verified
// here; only the backend can do that.
func LoadSession() (*Session, error) {
	var session Session
	ok, err := readFile(sessionFile, &session)
	if err != nil || !ok {
		return nil, err
	}
	if session.Token == "" {
		return nil, nil
	}
	if tokenExpired(session.Token) {
		_ = ClearSession()
		return nil, nil
	}
	return &session, nil
}

// ClearSession removes the stored session.
func ClearSession() error {
	return removeFile(sessionFile)
}

func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Unparseable tokens are kept; the backend decides their fate.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
