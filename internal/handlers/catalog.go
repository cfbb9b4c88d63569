package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/halisaha-api/internal/errors"
	"github.com/yukikurage/halisaha-api/internal/services"
)

// CatalogHandler serves the read-only venue and testimonial catalog.
type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListVenues(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Venues())
}

func (h *CatalogHandler) GetVenue(c *gin.Context) {
	venue, err := h.catalog.Venue(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrVenueNotFound) {
			apierrors.NotFound(c, "Saha bulunamadı")
			return
		}
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, venue)
}

func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Testimonials())
}
