package models

// Session is the client-held proof of authentication: the bearer credential
// plus the identifiers the portal needs to validate it. A Session is either
// fully present (all four fields set) or treated as absent; partial state
// means "not logged in".
type Session struct {
	UserID    string `json:"user_id"`
	LoggerID  string `json:"logger_id"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// Present reports whether all session attributes are set.
func (s Session) Present() bool {
	return s.UserID != "" && s.LoggerID != "" && s.Token != "" && s.TokenType != ""
}

// AuthorizationHeader renders the value for the Authorization header,
// e.g. "Bearer eyJh...".
func (s Session) AuthorizationHeader() string {
	return s.TokenType + " " + s.Token
}
