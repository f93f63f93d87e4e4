package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/database"
	"bistro/mail"
	"bistro/utils"
)

// Handler carries the store, token service and mail dispatcher into every
// endpoint. It replaces ambient package globals so lifecycle and tests stay
// explicit.
type Handler struct {
	Store  *database.Store
	Tokens *utils.TokenService
	Mailer *mail.Dispatcher
}

func NewHandler(store *database.Store, tokens *utils.TokenService, mailer *mail.Dispatcher) *Handler {
	return &Handler{Store: store, Tokens: tokens, Mailer: mailer}
}

func (h *Handler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Bistro Boss is Running")
}

// objectIDParam parses the :id path parameter, answering 400 itself when the
// value is not a valid ObjectID hex string.
func objectIDParam(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
