package models

// User is an auxiliary account record. Usernames are unique. Users have no
// HTTP surface; the type exists for completeness of the storage contract.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
