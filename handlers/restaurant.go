package handlers

import (
	"net/http"
	"strconv"

	"lamaison/services/restaurant"
	"lamaison/utils"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler serves the read-only menu and availability lookups the
// chat widget uses outside the dialog flow.
type RestaurantHandler struct {
	Catalog *restaurant.Catalog
	Table   *restaurant.AvailabilityTable
}

func NewRestaurantHandler(catalog *restaurant.Catalog, table *restaurant.AvailabilityTable) *RestaurantHandler {
	return &RestaurantHandler{Catalog: catalog, Table: table}
}

// Menu returns the menu summary plus the full categorized catalog.
func (h *RestaurantHandler) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"reply":      h.Catalog.Summary(),
		"categories": h.Catalog.Categories(),
	})
}

// MenuCategory returns the formatted items matching a category or keyword.
func (h *RestaurantHandler) MenuCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reply": h.Catalog.Lookup(c.Param("category"))})
}

// Availability answers a capacity query from day/time/guests query params.
func (h *RestaurantHandler) Availability(c *gin.Context) {
	day := c.Query("day")
	timeStr := c.Query("time")
	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil || guests < 1 || guests > 20 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid guests parameter", "guests must be an integer between 1 and 20")
		return
	}

	c.JSON(http.StatusOK, h.Table.Check(day, timeStr, guests))
}
