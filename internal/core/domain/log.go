package domain

import "time"

// LogAction categorizes an audit log entry.
type LogAction string

const (
	ActionLogin             LogAction = "LOGIN"
	ActionRegister          LogAction = "REGISTER"
	ActionLogout            LogAction = "LOGOUT"
	ActionAddTransaction    LogAction = "ADD_TRANSACTION"
	ActionUpdateTransaction LogAction = "UPDATE_TRANSACTION"
	ActionDeleteTransaction LogAction = "DELETE_TRANSACTION"
	ActionDeleteUser        LogAction = "DELETE_USER"
)

// Log is one entry in the append-only audit trail. Entries are stored
// oldest-first and are never mutated or deleted. Every state-mutating
// operation appends exactly one entry attributed to the acting user.
type Log struct {
	LogID     string    `json:"logID"` // Primary Key (UUID)
	Action    LogAction `json:"action"`
	Details   string    `json:"details"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}
