package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bistro/model"
)

func (h *Handler) AddCartEntry(c *gin.Context) {
	var entry model.CartEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart payload is required"})
		return
	}

	result, err := h.Store.Carts.InsertOne(c.Request.Context(), entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

func (h *Handler) ListCartEntries(c *gin.Context) {
	cursor, err := h.Store.Carts.Find(c.Request.Context(), bson.M{"email": c.Query("email")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
		return
	}

	entries := []model.CartEntry{}
	if err := cursor.All(c.Request.Context(), &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode cart"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) DeleteCartEntry(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.Store.Carts.DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete cart entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}
