package domain

// Account is one entry in the chart of accounts. The code drives every report
// classification (see classification.go) and orders all listings; it is unique
// and never empty.
type Account struct {
	AccountID string `json:"accountID"` // Primary Key (UUID)
	Code      string `json:"code"`      // Unique, compared and sorted lexically
	Name      string `json:"name"`
	AuditFields
}
