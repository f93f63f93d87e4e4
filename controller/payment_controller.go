package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/mail"
	"bistro/model"
)

// CreatePaymentIntent asks Stripe for an intent over the cart total and
// hands back the client secret the frontend confirms the charge with.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	type Request struct {
		Price float64 `json:"price" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price is required"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(req.Price * 100)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

// RecordPayment stores the payment, clears the cart entries it consumed and
// queues the confirmation email. The two store writes are independent calls:
// a failed cart delete leaves the payment recorded, and the email never
// influences the response.
func (h *Handler) RecordPayment(c *gin.Context) {
	var payment model.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment payload is required"})
		return
	}

	cartIDs, err := cartObjectIDs(payment.CartIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	ctx := c.Request.Context()
	insertResult, err := h.Store.Payments.InsertOne(ctx, payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		return
	}

	deleteResult, err := h.Store.Carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment recorded but cart not cleared"})
		return
	}

	h.Mailer.Enqueue(mail.OrderConfirmation(payment.TransactionID))

	c.JSON(http.StatusOK, gin.H{
		"result":       gin.H{"insertedId": insertResult.InsertedID},
		"deleteResult": gin.H{"deletedCount": deleteResult.DeletedCount},
	})
}

func (h *Handler) ListPayments(c *gin.Context) {
	cursor, err := h.Store.Payments.Find(c.Request.Context(), bson.M{"email": c.Param("email")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payments"})
		return
	}

	payments := []model.Payment{}
	if err := cursor.All(c.Request.Context(), &payments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func cartObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}
