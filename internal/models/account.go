package models

// Account represents a registry account row. Code is the numeric account code
// string used for classification; it is unique across the registry.
type Account struct {
	AccountID string `db:"account_id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	AuditFields
}
