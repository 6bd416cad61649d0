package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/cinelog/internal/model"
	"github.com/user/cinelog/internal/utils"
)

type createFavoriteRequest struct {
	Username string      `json:"username" binding:"required"`
	MovieID  json.Number `json:"movieId" binding:"required"`
}

// CreateFavorite bookmarks a movie for the named user. Inserts are
// unconditional: no uniqueness is enforced on (user, movie), so two
// concurrent creates both succeed.
func (h *Handler) CreateFavorite(c *gin.Context) {
	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, ok := h.resolveUser(c, req.Username)
	if !ok {
		return
	}

	favorite := &model.Favorite{
		MovieID: req.MovieID.String(),
		UserID:  user.ID,
	}
	if err := h.Repos.Favorite.Create(favorite); err != nil {
		log.Printf("Error creating favorite: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"newFavorite": favorite})
}

// ListFavorites returns all favorites for the named user.
func (h *Handler) ListFavorites(c *gin.Context) {
	user, ok := h.resolveUser(c, c.Param("username"))
	if !ok {
		return
	}

	favorites, err := h.Repos.Favorite.ListByUser(user.ID)
	if err != nil {
		log.Printf("Error getting favorites: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// GetFavorite looks up a single (user, movie) favorite. The details
// page uses this to decide whether to show the favorited state, so an
// absent row answers with a null body rather than an error.
func (h *Handler) GetFavorite(c *gin.Context) {
	user, ok := h.resolveUser(c, c.Param("username"))
	if !ok {
		return
	}

	favorite, err := h.Repos.Favorite.Find(user.ID, c.Param("id"))
	if err != nil {
		log.Printf("Error fetching favorite: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// DeleteFavorite removes every favorite matching (user, movie).
func (h *Handler) DeleteFavorite(c *gin.Context) {
	user, ok := h.resolveUser(c, c.Param("username"))
	if !ok {
		return
	}

	count, err := h.Repos.Favorite.DeleteByUserAndMovie(user.ID, c.Param("id"))
	if err != nil {
		log.Printf("Error deleting favorite: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}
	if count == 0 {
		utils.NotFound(c, "Favorite not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite deletion successful."})
}

// RecentFavorites returns the user's newest favorites for the home
// recents strip.
func (h *Handler) RecentFavorites(c *gin.Context) {
	user, ok := h.resolveUser(c, c.Param("username"))
	if !ok {
		return
	}

	favorites, err := h.Repos.Favorite.RecentByUser(user.ID)
	if err != nil {
		log.Printf("Error fetching recent favorites: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, favorites)
}
