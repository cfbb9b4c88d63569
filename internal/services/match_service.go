package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/dto"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrNotMatchOrganizer = errors.New("only the organizer can perform this action")
)

// MatchService handles match business logic
type MatchService struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewMatchService creates a new MatchService
func NewMatchService(matchRepo repository.MatchRepository, userRepo repository.UserRepository, logger *slog.Logger) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// CreateMatchInput represents input for creating a match
type CreateMatchInput struct {
	VenueName         string
	Location          string
	Date              string
	Time              string
	MaxPlayers        int
	SkillLevel        models.SkillLevel
	Price             int
	RequiredPositions []models.Position
}

func (in *CreateMatchInput) normalize() error {
	in.VenueName = strings.TrimSpace(in.VenueName)
	in.Location = strings.TrimSpace(in.Location)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)

	if in.VenueName == "" || in.Location == "" || in.Date == "" || in.Time == "" || in.SkillLevel == "" {
		return invalid("Tüm alanları doldurunuz")
	}
	if in.MaxPlayers <= 0 {
		return invalid("Oyuncu sayısı pozitif olmalıdır")
	}
	if in.Price < 0 {
		return invalid("Fiyat negatif olamaz")
	}
	if !in.SkillLevel.Valid() {
		return invalid("Geçersiz seviye")
	}

	positions := make([]models.Position, 0, len(in.RequiredPositions))
	for _, p := range in.RequiredPositions {
		p = models.Position(strings.ToLower(strings.TrimSpace(string(p))))
		if !p.Valid() {
			return invalid(fmt.Sprintf("Geçersiz mevki: %s", p))
		}
		if !slices.Contains(positions, p) {
			positions = append(positions, p)
		}
	}
	in.RequiredPositions = positions
	return nil
}

// CreateMatch validates input and registers a match owned by organizerID
func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput, organizerID string) (*dto.MatchDTO, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	match, err := s.matchRepo.Create(ctx, models.Match{
		VenueName:         input.VenueName,
		Location:          input.Location,
		Date:              input.Date,
		Time:              input.Time,
		MaxPlayers:        input.MaxPlayers,
		SkillLevel:        input.SkillLevel,
		Price:             input.Price,
		RequiredPositions: input.RequiredPositions,
	}, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created", slog.String("match_id", match.ID), slog.String("organizer_id", organizerID))

	view := dto.ToMemberMatchDTO(*match)
	return &view, nil
}

// ListMatches returns the filtered matches as seen by viewerID
func (s *MatchService) ListMatches(ctx context.Context, filter repository.MatchFilter, viewerID string) ([]dto.MatchDTO, error) {
	matches, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return newPhoneBook(s.userRepo).projectAll(ctx, matches, viewerID)
}

// GetMatch returns one match as seen by viewerID
func (s *MatchService) GetMatch(ctx context.Context, matchID, viewerID string) (*dto.MatchDTO, error) {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, s.mapRepoError(err, "find match")
	}
	return s.project(ctx, *match, viewerID)
}

// JoinMatch adds userID to the match. Joining again changes nothing.
func (s *MatchService) JoinMatch(ctx context.Context, matchID, userID string) (*dto.MatchDTO, error) {
	match, err := s.matchRepo.Join(ctx, matchID, userID)
	if err != nil {
		return nil, s.mapRepoError(err, "join match")
	}
	return s.project(ctx, *match, userID)
}

// LeaveMatch applies the reliability penalty and then removes userID from the
// match. The penalty is applied on every call, including when the user was not
// a participant. If the penalty cannot be saved the membership is left as is.
func (s *MatchService) LeaveMatch(ctx context.Context, matchID, userID string) (*dto.MatchDTO, error) {
	if _, err := s.matchRepo.FindByID(ctx, matchID); err != nil {
		return nil, s.mapRepoError(err, "find match")
	}

	penalized := true
	user, err := s.userRepo.AdjustReliability(ctx, userID, constants.LeavePenalty)
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "reliability penalty applied",
			slog.String("user_id", userID), slog.String("match_id", matchID), slog.Int("score", user.ReliabilityScore))
	case errors.Is(err, repository.ErrNotFound):
		penalized = false
		s.logger.WarnContext(ctx, "leaving user not in directory, penalty skipped", slog.String("user_id", userID))
	default:
		return nil, fmt.Errorf("failed to apply reliability penalty: %w", err)
	}

	match, err := s.matchRepo.Leave(ctx, matchID, userID)
	if err != nil {
		if penalized {
			s.refundPenalty(ctx, userID)
		}
		return nil, s.mapRepoError(err, "leave match")
	}

	return s.project(ctx, *match, userID)
}

// refundPenalty reverts a penalty whose leave did not go through.
func (s *MatchService) refundPenalty(ctx context.Context, userID string) {
	if _, err := s.userRepo.AdjustReliability(ctx, userID, -constants.LeavePenalty); err != nil {
		s.logger.ErrorContext(ctx, "failed to refund reliability penalty",
			slog.String("user_id", userID), slog.Any("error", err))
	}
}

// AddFeedback validates and appends a feedback entry
func (s *MatchService) AddFeedback(ctx context.Context, matchID, reviewerID, comment string, rating int) (*dto.MatchDTO, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, invalid("Yorum boş olamaz")
	}
	if rating < constants.MinRating || rating > constants.MaxRating {
		return nil, invalid(fmt.Sprintf("Oylama %d ile %d arasında olmalıdır", constants.MinRating, constants.MaxRating))
	}

	match, err := s.matchRepo.AddFeedback(ctx, matchID, models.Feedback{
		UserID:  reviewerID,
		Comment: comment,
		Rating:  rating,
	})
	if err != nil {
		return nil, s.mapRepoError(err, "add feedback")
	}

	s.logger.InfoContext(ctx, "feedback added", slog.String("match_id", matchID), slog.String("user_id", reviewerID))
	return s.project(ctx, *match, reviewerID)
}

// MyMatches returns the matches userID organizes and the ones they joined
func (s *MatchService) MyMatches(ctx context.Context, userID string) (*dto.MyMatchesDTO, error) {
	organizing, err := s.matchRepo.ListByOrganizer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organized matches: %w", err)
	}
	joined, err := s.matchRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list joined matches: %w", err)
	}

	book := newPhoneBook(s.userRepo)
	result := &dto.MyMatchesDTO{}
	if result.Organizing, err = book.projectAll(ctx, organizing, userID); err != nil {
		return nil, err
	}
	if result.Joined, err = book.projectAll(ctx, joined, userID); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteMatch deletes a match if the actor is its organizer
func (s *MatchService) DeleteMatch(ctx context.Context, matchID, actorID string) error {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return s.mapRepoError(err, "find match")
	}
	if match.OrganizerID != actorID {
		return ErrNotMatchOrganizer
	}

	deleted, err := s.matchRepo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if !deleted {
		return ErrMatchNotFound
	}

	s.logger.InfoContext(ctx, "match deleted", slog.String("match_id", matchID))
	return nil
}

func (s *MatchService) project(ctx context.Context, m models.Match, viewerID string) (*dto.MatchDTO, error) {
	view, err := newPhoneBook(s.userRepo).project(ctx, m, viewerID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *MatchService) mapRepoError(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMatchNotFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
