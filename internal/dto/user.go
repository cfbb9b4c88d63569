package dto

import "github.com/yukikurage/halisaha-api/internal/models"

// UserDTO represents a user in API responses. The credential is never included.
type UserDTO struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	FullName         string  `json:"fullName"`
	Phone            string  `json:"phone"`
	Position         string  `json:"position"`
	Height           *int    `json:"height"`
	Weight           *int    `json:"weight"`
	Age              *int    `json:"age"`
	ProfilePicture   *string `json:"profilePicture"`
	ReliabilityScore int     `json:"guvenilirlikPuani"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:               user.ID,
		Username:         user.Username,
		FullName:         user.FullName,
		Phone:            user.Phone,
		Position:         user.Position,
		Height:           user.Height,
		Weight:           user.Weight,
		Age:              user.Age,
		ProfilePicture:   user.ProfilePicture,
		ReliabilityScore: user.ReliabilityScore,
	}
}
