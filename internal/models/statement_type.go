package models

// StatementType is static reference data describing one supported
// statement export format.
type StatementType struct {
	DefaultModel
	Key         string `gorm:"uniqueIndex"` // Stable format key, e.g. "HSBC_CC"
	Description string
}
