package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bistro/model"
)

func (h *Handler) ListReviews(c *gin.Context) {
	cursor, err := h.Store.Reviews.Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	reviews := []model.Review{}
	if err := cursor.All(c.Request.Context(), &reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) ListReviewsByEmail(c *gin.Context) {
	cursor, err := h.Store.Reviews.Find(c.Request.Context(), bson.M{"email": c.Param("email")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	reviews := []model.Review{}
	if err := cursor.All(c.Request.Context(), &reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var review model.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review payload is required"})
		return
	}

	result, err := h.Store.Reviews.InsertOne(c.Request.Context(), review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}
