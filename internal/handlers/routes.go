package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/halisaha-api/internal/middleware"
)

// RegisterRoutes mounts the API on api. Session middleware must already be
// installed on the engine.
func RegisterRoutes(api *gin.RouterGroup, authHandler *AuthHandler, matchHandler *MatchHandler, catalogHandler *CatalogHandler) {
	requireAuth := middleware.RequireAuth()
	api.Use(middleware.OptionalAuth())

	// Auth routes
	api.POST("/kayit", authHandler.Register)
	api.POST("/giris", authHandler.Login)
	api.POST("/cikis", authHandler.Logout)
	api.GET("/profil", requireAuth, authHandler.Profile)
	api.GET("/auth/durum", authHandler.Status)

	// Match routes, English vocabulary
	matches := api.Group("/matches")
	{
		matches.GET("", matchHandler.ListMatches)
		matches.POST("", requireAuth, matchHandler.CreateMatch)
		matches.GET("/:id", matchHandler.GetMatch)
	}

	// Match routes, Turkish vocabulary
	maclar := api.Group("/maclar")
	{
		maclar.GET("", matchHandler.ListMaclar)
		maclar.POST("", requireAuth, matchHandler.CreateMac)
		maclar.GET("/:id", matchHandler.GetMatch)
		maclar.DELETE("/:id", requireAuth, matchHandler.DeleteMatch)
		maclar.POST("/:id/katil", requireAuth, matchHandler.JoinMatch)
		maclar.POST("/:id/ayril", requireAuth, matchHandler.LeaveMatch)
		maclar.POST("/:id/geri-bildirim", requireAuth, matchHandler.AddFeedback)
	}
	api.GET("/maclarim", requireAuth, matchHandler.MyMatches)

	// Catalog routes
	api.GET("/venues", catalogHandler.ListVenues)
	api.GET("/venues/:id", catalogHandler.GetVenue)
	api.GET("/testimonials", catalogHandler.ListTestimonials)
}
