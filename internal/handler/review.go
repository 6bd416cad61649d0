package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/cinelog/internal/model"
	"github.com/user/cinelog/internal/utils"
)

// createReviewRequest accepts the review form payload. MovieID and
// Score arrive as either JSON numbers or strings depending on the
// submitting view, so both are decoded as json.Number.
type createReviewRequest struct {
	Username  string      `json:"username" binding:"required"`
	Title     string      `json:"title" binding:"required"`
	Body      string      `json:"body" binding:"required"`
	MovieID   json.Number `json:"movieId" binding:"required"`
	Score     json.Number `json:"score"`
	MovieName string      `json:"moviename"`
}

// CreateReview persists a review for the named user. Title and body
// lengths are validated by the submitting client, not re-checked here.
func (h *Handler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	score, err := strconv.Atoi(req.Score.String())
	if err != nil {
		utils.BadRequest(c, "Score must be an integer")
		return
	}

	user, ok := h.resolveUser(c, req.Username)
	if !ok {
		return
	}

	review := &model.Review{
		Title:     req.Title,
		Body:      req.Body,
		Score:     score,
		MovieID:   req.MovieID.String(),
		UserID:    user.ID,
		Username:  req.Username,
		MovieName: req.MovieName,
	}
	if err := h.Repos.Review.Create(review); err != nil {
		log.Printf("Error creating review: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListReviewsByUser returns the named user's reviews for the profile
// page. The route wildcard is named "id" (shared with the by-movie
// routes) but carries a username here.
func (h *Handler) ListReviewsByUser(c *gin.Context) {
	user, ok := h.resolveUser(c, c.Param("id"))
	if !ok {
		return
	}

	reviews, err := h.Repos.Review.ListByUser(user.ID)
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListReviewsByMovie returns every review for an external movie id.
// Public: the details page shows reviews to anonymous visitors.
func (h *Handler) ListReviewsByMovie(c *gin.Context) {
	reviews, err := h.Repos.Review.ListByMovie(c.Param("id"))
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

type updateReviewRequest struct {
	Title string      `json:"title" binding:"required"`
	Score json.Number `json:"score"`
	Body  string      `json:"body" binding:"required"`
}

// UpdateReview overwrites title, score and body by primary key.
// Ownership is not re-checked here; the edit modal only offers the
// caller's own reviews.
func (h *Handler) UpdateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid review id")
		return
	}

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	score, err := strconv.Atoi(req.Score.String())
	if err != nil {
		utils.BadRequest(c, "Score must be an integer")
		return
	}

	review, err := h.Repos.Review.Update(id, req.Title, score, req.Body)
	if err != nil {
		log.Printf("Error updating review: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}
	if review == nil {
		utils.NotFound(c, "Review not found")
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review by primary key and returns the deleted
// row. Ownership is not re-verified before deletion.
func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid review id")
		return
	}

	review, err := h.Repos.Review.Delete(id)
	if err != nil {
		log.Printf("Error deleting review: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}
	if review == nil {
		utils.NotFound(c, "Review not found")
		return
	}

	c.JSON(http.StatusOK, review)
}

// RecentReviews returns the newest reviews for the anonymous landing
// page.
func (h *Handler) RecentReviews(c *gin.Context) {
	reviews, err := h.Repos.Review.Recent()
	if err != nil {
		log.Printf("Error fetching recent reviews: %v", err)
		utils.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
