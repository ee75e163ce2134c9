package domain

// User is an operator credential. The system ships with a single default
// operator seeded on first start; there is no role model beyond "logged in".
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
