package model

// Scope identifies the caller of a use case.
type Scope struct {
	UserID   int64
	ChatID   int64
	Username string
}
