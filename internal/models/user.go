package models

// User represents an operator row used for authentication.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
