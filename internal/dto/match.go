package dto

import "github.com/yukikurage/halisaha-api/internal/models"

// MatchDTO is the match as a particular viewer may see it. Member details
// are nil for viewers who are neither organizer nor participant, which drops
// those keys from the JSON entirely.
type MatchDTO struct {
	ID                string            `json:"macId"`
	VenueName         string            `json:"sahaAdi"`
	Location          string            `json:"konum"`
	Date              string            `json:"tarih"`
	Time              string            `json:"saat"`
	MaxPlayers        int               `json:"oyuncuSayisi"`
	CurrentPlayers    int               `json:"mevcutOyuncuSayisi"`
	SkillLevel        models.SkillLevel `json:"seviye"`
	Price             int               `json:"fiyat"`
	RequiredPositions []models.Position `json:"gerekliMevkiler"`

	*MatchMemberDetails

	OrganizerPhone *string `json:"organizatorTelefon,omitempty"`
}

// MatchMemberDetails holds the fields reserved for the organizer and participants.
type MatchMemberDetails struct {
	ParticipantIDs []string          `json:"katilanOyuncular"`
	OrganizerID    string            `json:"organizatorId"`
	Feedback       []models.Feedback `json:"geriBildirimler"`
}

// MyMatchesDTO groups the caller's matches by role
type MyMatchesDTO struct {
	Organizing []MatchDTO `json:"organizatorOldugum"`
	Joined     []MatchDTO `json:"katildigim"`
}

// ToPublicMatchDTO converts a match to the fields anyone may see
func ToPublicMatchDTO(m models.Match) MatchDTO {
	return MatchDTO{
		ID:                m.ID,
		VenueName:         m.VenueName,
		Location:          m.Location,
		Date:              m.Date,
		Time:              m.Time,
		MaxPlayers:        m.MaxPlayers,
		CurrentPlayers:    m.CurrentPlayers,
		SkillLevel:        m.SkillLevel,
		Price:             m.Price,
		RequiredPositions: m.RequiredPositions,
	}
}

// ToMemberMatchDTO converts a match including member-only fields
func ToMemberMatchDTO(m models.Match) MatchDTO {
	dto := ToPublicMatchDTO(m)
	dto.MatchMemberDetails = &MatchMemberDetails{
		ParticipantIDs: m.ParticipantIDs,
		OrganizerID:    m.OrganizerID,
		Feedback:       m.Feedback,
	}
	return dto
}
