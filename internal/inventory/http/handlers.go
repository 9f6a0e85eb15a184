package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeeist/go-coffeeist-backend/internal/auth"
	"github.com/coffeeist/go-coffeeist-backend/internal/inventory"
)

type Handler struct {
	agg *inventory.Aggregator
}

func New(agg *inventory.Aggregator) *Handler {
	return &Handler{agg: agg}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/inventory")
	g.GET("/coffee-beans", h.usedCoffeeBeans)
	g.GET("/equipment", h.usedEquipment)
}

func (h *Handler) usedCoffeeBeans(c *gin.Context) {
	beans, err := h.agg.UsedCoffeeBeans(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "coffeeBeans": beans})
}

func (h *Handler) usedEquipment(c *gin.Context) {
	equipment, err := h.agg.UsedEquipment(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "equipment": equipment})
}
