package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"

	"bistro/model"
)

func (h *Handler) ListMenu(c *gin.Context) {
	cursor, err := h.Store.Menu.Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}

	items := []model.MenuItem{}
	if err := cursor.All(c.Request.Context(), &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var item model.MenuItem
	if err := h.Store.Menu.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&item); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu item payload is required"})
		return
	}

	result, err := h.Store.Menu.InsertOne(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu item payload is required"})
		return
	}

	result, err := h.Store.Menu.UpdateOne(
		c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"recipe":   item.Recipe,
			"price":    item.Price,
			"category": item.Category,
			"image":    item.Image,
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// DeleteMenuItem removes a catalog entry. Deleting an absent id answers with
// a zero deletedCount rather than an error.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.Store.Menu.DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// BulkImportMenu loads menu items from an uploaded Excel sheet. Columns:
// name, recipe, price, category, image. Rows with a missing name or an
// unparsable price are skipped and counted, not fatal.
func (h *Handler) BulkImportMenu(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse Excel file"})
		return
	}

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel must have at least one row of data"})
		return
	}

	var items []interface{}
	skipped := 0
	for _, row := range rows[1:] {
		item, ok := menuItemFromRow(row)
		if !ok {
			skipped++
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid rows in Excel file", "skipped": skipped})
		return
	}

	result, err := h.Store.Menu.InsertMany(c.Request.Context(), items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": len(result.InsertedIDs), "skipped": skipped})
}

// menuItemFromRow maps one sheet row to a MenuItem. Expected column order:
// name, recipe, price, category, image.
func menuItemFromRow(row []string) (model.MenuItem, bool) {
	if len(row) < 4 {
		return model.MenuItem{}, false
	}

	name := strings.TrimSpace(row[0])
	if name == "" {
		return model.MenuItem{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil || price <= 0 {
		return model.MenuItem{}, false
	}

	item := model.MenuItem{
		Name:     name,
		Recipe:   strings.TrimSpace(row[1]),
		Price:    price,
		Category: strings.TrimSpace(row[3]),
	}
	if len(row) > 4 {
		item.Image = strings.TrimSpace(row[4])
	}
	return item, true
}
