// Package models contains the data entities shared by the client's storage,
// auth, and session layers.
package models

// User is a registered account kept in the local user collection.
// JSON field names match the persisted format written by earlier builds,
// so existing data keeps loading.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	// CreatedAt is a unix timestamp in milliseconds.
	CreatedAt int64 `json:"createdAt"`
}
