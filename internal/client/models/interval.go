package models

// SessionInterval is one login/logout pair for a user as reported by the
// portal. LogoutAt is nil while the user is still online; TimeDifference
// carries the precomputed "HH:MM:SS" duration and is meaningful only for
// closed intervals.
type SessionInterval struct {
	LoginAt        string  `json:"login_at"`
	LogoutAt       *string `json:"logout_at"`
	TimeDifference string  `json:"time_difference"`
}

// Open reports whether the interval has no recorded logout.
func (i SessionInterval) Open() bool {
	return i.LogoutAt == nil
}

// LoggerRecord is one row of the user-activity report: a user and their
// login/logout history.
type LoggerRecord struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	UserName  string            `json:"user_name"`
	Intervals []SessionInterval `json:"detail_records"`
}
