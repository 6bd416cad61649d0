package router

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinelog/internal/handler"
	"github.com/user/cinelog/internal/middleware"
)

// RegisterRoutes wires the HTTP surface. Public routes bypass the auth
// gate entirely; protected routes reject before handler logic runs.
func RegisterRoutes(r *gin.Engine, h *handler.Handler, verifier middleware.TokenVerifier) {
	requireAuth := middleware.RequireAuth(verifier)

	// ==================== Public ====================
	r.GET("/ping", h.Ping)
	// /reviews/:id and /reviews/:id/profile share a wildcard name
	// because gin allows only one per path position; the profile route
	// reads it as a username.
	r.GET("/reviews/:id", h.ListReviewsByMovie)
	r.PUT("/reviews/:id", h.UpdateReview)
	r.GET("/recent/reviews", h.RecentReviews)
	r.GET("/favorite/:username/:id", h.GetFavorite)

	// ==================== Protected ====================
	r.POST("/verify-user", requireAuth, h.VerifyUser)
	r.POST("/create/review", requireAuth, h.CreateReview)
	r.GET("/reviews/:id/profile", requireAuth, h.ListReviewsByUser)
	r.DELETE("/reviews/:id", requireAuth, h.DeleteReview)
	r.POST("/favorites", requireAuth, h.CreateFavorite)
	r.GET("/favorites/:username", requireAuth, h.ListFavorites)
	r.DELETE("/favorites/:username/:id", requireAuth, h.DeleteFavorite)
	r.GET("/user/:username/favorites", requireAuth, h.RecentFavorites)
}
