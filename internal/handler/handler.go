package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/cinelog/internal/config"
	"github.com/user/cinelog/internal/middleware"
	"github.com/user/cinelog/internal/model"
	"github.com/user/cinelog/internal/repository"
	"github.com/user/cinelog/internal/utils"
)

// Handler holds the dependencies shared by all route handlers.
type Handler struct {
	Repos  *repository.Repositories
	Config *config.Config
}

func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:  repos,
		Config: cfg,
	}
}

// Ping is the liveness check.
func (h *Handler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// VerifyUser upserts the authenticated principal. This is the only
// place a user row is created: absent rows are created from the token's
// claim set, present rows are returned as-is, so calling twice with the
// same identity is idempotent.
func (h *Handler) VerifyUser(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		utils.Error(c, http.StatusUnauthorized, "Missing token claims")
		return
	}

	user, err := h.Repos.User.FindByAuthID(claims.Subject)
	if err != nil {
		log.Printf("Error verifying user: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	if user != nil {
		c.JSON(http.StatusOK, user)
		return
	}

	newUser := &model.User{
		AuthID:   claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		Username: claims.Username,
	}
	if err := h.Repos.User.Create(newUser); err != nil {
		log.Printf("Error creating user: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, newUser)
}

// resolveUser maps a username to its row, writing the 404 response when
// it does not exist.
func (h *Handler) resolveUser(c *gin.Context, username string) (*model.User, bool) {
	user, err := h.Repos.User.FindByUsername(username)
	if err != nil {
		log.Printf("Error fetching user %q: %v", username, err)
		utils.InternalServerError(c, "Server error")
		return nil, false
	}
	if user == nil {
		utils.NotFound(c, "User not found!")
		return nil, false
	}
	return user, true
}
