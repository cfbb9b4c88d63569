package models

// User is a registered player. Password holds the bcrypt hash and never leaves the server.
type User struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	Password         string  `json:"password"`
	FullName         string  `json:"fullName"`
	Phone            string  `json:"phone"`
	Position         string  `json:"position,omitempty"`
	Height           *int    `json:"height"`
	Weight           *int    `json:"weight"`
	Age              *int    `json:"age"`
	ProfilePicture   *string `json:"profilePicture"`
	ReliabilityScore int     `json:"guvenilirlikPuani"`
}
