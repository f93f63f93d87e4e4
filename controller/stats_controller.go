package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderStat is one row of the per-category order statistics.
type OrderStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// AdminStats returns the dashboard headline numbers: collection counts plus
// total revenue summed over every recorded payment.
func (h *Handler) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.Store.Users.EstimatedDocumentCount(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count users"})
		return
	}
	menuItems, err := h.Store.Menu.EstimatedDocumentCount(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count menu items"})
		return
	}
	orders, err := h.Store.Payments.EstimatedDocumentCount(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count orders"})
		return
	}

	cursor, err := h.Store.Payments.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute revenue"})
		return
	}

	var groups []bson.M
	if err := cursor.All(ctx, &groups); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode revenue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"menuItems": menuItems,
		"orders":    orders,
		"revenue":   totalRevenue(groups),
	})
}

// OrderStats groups every ordered menu item by category. Items referenced by
// a payment but since removed from the catalog drop out of the join. No
// ordering is promised.
func (h *Handler) OrderStats(c *gin.Context) {
	ctx := c.Request.Context()

	cursor, err := h.Store.Payments.Aggregate(ctx, orderStatsPipeline())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute order stats"})
		return
	}

	stats := []OrderStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode order stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// totalRevenue unwraps the single-group sum, defaulting to 0 when no
// payments exist yet.
func totalRevenue(groups []bson.M) float64 {
	if len(groups) == 0 {
		return 0
	}
	switch v := groups[0]["totalRevenue"].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	}
	return 0
}

func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menuItemIds"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItems"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
	}
}
