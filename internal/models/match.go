package models

import "slices"

type Position string

const (
	PositionGoalkeeper Position = "kaleci"
	PositionDefender   Position = "defans"
	PositionMidfielder Position = "orta-saha"
	PositionForward    Position = "forvet"
)

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Başlangıç"
	SkillIntermediate SkillLevel = "Orta Seviye"
	SkillAdvanced     SkillLevel = "İleri Seviye"
	SkillAll          SkillLevel = "Tüm Seviyeler"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillAll:
		return true
	}
	return false
}

// Feedback is a single review left on a match. Entries are append-only.
type Feedback struct {
	UserID  string `json:"userId"`
	Comment string `json:"yorum"`
	Rating  int    `json:"oylama"`
}

// Match is a hosted game. The organizer is implicitly the first player and is
// never listed in ParticipantIDs.
type Match struct {
	ID                string     `json:"macId"`
	VenueName         string     `json:"sahaAdi"`
	Location          string     `json:"konum"`
	Date              string     `json:"tarih"`
	Time              string     `json:"saat"`
	MaxPlayers        int        `json:"oyuncuSayisi"`
	CurrentPlayers    int        `json:"mevcutOyuncuSayisi"`
	SkillLevel        SkillLevel `json:"seviye"`
	Price             int        `json:"fiyat"`
	RequiredPositions []Position `json:"gerekliMevkiler"`
	ParticipantIDs    []string   `json:"katilanOyuncular"`
	OrganizerID       string     `json:"organizatorId"`
	Feedback          []Feedback `json:"geriBildirimler"`
}

// HasParticipant reports whether userID has joined the match.
func (m *Match) HasParticipant(userID string) bool {
	return slices.Contains(m.ParticipantIDs, userID)
}

// RecountPlayers recomputes CurrentPlayers from the participant list.
func (m *Match) RecountPlayers() {
	m.CurrentPlayers = len(m.ParticipantIDs) + 1
}

// Normalize fills slices that older records may lack.
func (m *Match) Normalize() {
	if m.ParticipantIDs == nil {
		m.ParticipantIDs = []string{}
	}
	if m.RequiredPositions == nil {
		m.RequiredPositions = []Position{}
	}
	if m.Feedback == nil {
		m.Feedback = []Feedback{}
	}
}
