package models

// User owns statements, transactions and budgets.
//
// Authentication is handled outside of this backend, every operation
// takes the user ID as an explicit parameter.
type User struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
}
