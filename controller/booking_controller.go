package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bistro/model"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking payload is required"})
		return
	}

	result, err := h.Store.Bookings.InsertOne(c.Request.Context(), booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

func (h *Handler) ListBookings(c *gin.Context) {
	cursor, err := h.Store.Bookings.Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	bookings := []model.Booking{}
	if err := cursor.All(c.Request.Context(), &bookings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ListBookingsByEmail(c *gin.Context) {
	cursor, err := h.Store.Bookings.Find(c.Request.Context(), bson.M{"email": c.Param("email")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	bookings := []model.Booking{}
	if err := cursor.All(c.Request.Context(), &bookings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.Store.Bookings.DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	type Request struct {
		Status string `json:"status" binding:"required"`
	}
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	result, err := h.Store.Bookings.UpdateOne(
		c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": req.Status}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}
