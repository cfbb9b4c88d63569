package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/halisaha-api/internal/dto"
	apierrors "github.com/yukikurage/halisaha-api/internal/errors"
	"github.com/yukikurage/halisaha-api/internal/middleware"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
	"github.com/yukikurage/halisaha-api/internal/services"
	"github.com/yukikurage/halisaha-api/internal/utils"
)

// MatchHandler serves the match registry under both the English and the
// Turkish route vocabulary.
type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// ListMatches lists matches filtered by location, date, skillLevel and position
func (h *MatchHandler) ListMatches(c *gin.Context) {
	h.list(c, repository.MatchFilter{
		Location:   c.Query("location"),
		Position:   c.Query("position"),
		Date:       c.Query("date"),
		SkillLevel: c.Query("skillLevel"),
	})
}

// ListMaclar lists matches filtered by konum, mevki, tarih and seviye
func (h *MatchHandler) ListMaclar(c *gin.Context) {
	h.list(c, repository.MatchFilter{
		Location:   c.Query("konum"),
		Position:   c.Query("mevki"),
		Date:       c.Query("tarih"),
		SkillLevel: c.Query("seviye"),
	})
}

func (h *MatchHandler) list(c *gin.Context, filter repository.MatchFilter) {
	matches, err := h.matchService.ListMatches(c.Request.Context(), filter, middleware.ViewerID(c))
	if err != nil {
		respondMatchError(c, err)
		return
	}

	if params, ok := utils.GetPaginationParams(c); ok {
		c.Header(utils.TotalCountHeader, strconv.Itoa(len(matches)))
		matches = utils.Paginate(matches, params)
	}

	c.JSON(http.StatusOK, matches)
}

// CreateMatch creates a match from the English request vocabulary
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	type CreateMatchRequest struct {
		VenueName       string            `json:"venueName"`
		Location        string            `json:"location"`
		Date            string            `json:"date"`
		Time            string            `json:"time"`
		MaxPlayers      int               `json:"maxPlayers"`
		SkillLevel      models.SkillLevel `json:"skillLevel"`
		Price           int               `json:"price"`
		NeededPositions []models.Position `json:"neededPositions"`
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Tüm alanları doldurunuz")
		return
	}

	h.create(c, services.CreateMatchInput{
		VenueName:         req.VenueName,
		Location:          req.Location,
		Date:              req.Date,
		Time:              req.Time,
		MaxPlayers:        req.MaxPlayers,
		SkillLevel:        req.SkillLevel,
		Price:             req.Price,
		RequiredPositions: req.NeededPositions,
	})
}

// CreateMac creates a match from the Turkish request vocabulary
func (h *MatchHandler) CreateMac(c *gin.Context) {
	type CreateMacRequest struct {
		SahaAdi         string            `json:"sahaAdi"`
		Konum           string            `json:"konum"`
		Tarih           string            `json:"tarih"`
		Saat            string            `json:"saat"`
		OyuncuSayisi    int               `json:"oyuncuSayisi"`
		Seviye          models.SkillLevel `json:"seviye"`
		Fiyat           int               `json:"fiyat"`
		GerekliMevkiler []models.Position `json:"gerekliMevkiler"`
	}

	var req CreateMacRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Tüm alanları doldurunuz")
		return
	}

	h.create(c, services.CreateMatchInput{
		VenueName:         req.SahaAdi,
		Location:          req.Konum,
		Date:              req.Tarih,
		Time:              req.Saat,
		MaxPlayers:        req.OyuncuSayisi,
		SkillLevel:        req.Seviye,
		Price:             req.Fiyat,
		RequiredPositions: req.GerekliMevkiler,
	})
}

func (h *MatchHandler) create(c *gin.Context, input services.CreateMatchInput) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), input, userID)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch returns one match projected for the caller
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, err := h.matchService.GetMatch(c.Request.Context(), c.Param("id"), middleware.ViewerID(c))
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// JoinMatch adds the caller to a match
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	h.mutate(c, h.matchService.JoinMatch)
}

// LeaveMatch removes the caller from a match and applies the reliability penalty
func (h *MatchHandler) LeaveMatch(c *gin.Context) {
	h.mutate(c, h.matchService.LeaveMatch)
}

func (h *MatchHandler) mutate(c *gin.Context, op func(ctx context.Context, matchID, userID string) (*dto.MatchDTO, error)) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	match, err := op(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// AddFeedback appends the caller's comment and rating to a match
func (h *MatchHandler) AddFeedback(c *gin.Context) {
	type FeedbackRequest struct {
		Yorum  string `json:"yorum"`
		Oylama int    `json:"oylama"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Yorum ve oylama gereklidir")
		return
	}

	match, err := h.matchService.AddFeedback(c.Request.Context(), c.Param("id"), userID, req.Yorum, req.Oylama)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// MyMatches returns the caller's organized and joined matches
func (h *MatchHandler) MyMatches(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	result, err := h.matchService.MyMatches(c.Request.Context(), userID)
	if err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteMatch deletes a match owned by the caller
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.matchService.DeleteMatch(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maç silindi"})
}

func respondMatchError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apierrors.BadRequest(c, validationErr.Message)
	case errors.Is(err, services.ErrMatchNotFound):
		apierrors.NotFound(c, "Maç bulunamadı")
	case errors.Is(err, services.ErrNotMatchOrganizer):
		apierrors.Forbidden(c, "Bu maçı yalnızca organizatör silebilir")
	default:
		apierrors.InternalError(c, "İşlem sırasında bir hata oluştu")
	}
}
