package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coffeeist/go-coffeeist-backend/internal/auth"
	"github.com/coffeeist/go-coffeeist-backend/internal/catalog"
	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

type Handler struct {
	repo *catalog.Repository
}

func New(repo *catalog.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	beans := rg.Group("/coffee-beans")
	beans.GET("", h.listCoffeeBeans)
	beans.GET("/:id", h.getCoffeeBean)
	beans.POST("", h.createCoffeeBean)

	equipment := rg.Group("/equipment")
	equipment.GET("", h.listEquipment)
	equipment.GET("/:id", h.getEquipment)
	equipment.POST("", h.createEquipment)

	methods := rg.Group("/brewing-methods")
	methods.GET("", h.listBrewingMethods)
	methods.GET("/:id", h.getBrewingMethod)
	methods.POST("", h.createBrewingMethod)
}

func (h *Handler) listCoffeeBeans(c *gin.Context) {
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		beans, err := h.repo.SearchCoffeeBeans(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "coffeeBeans": beans})
		return
	}

	beans, err := h.repo.TopCoffeeBeans(c.Request.Context(), limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "coffeeBeans": beans})
}

func (h *Handler) getCoffeeBean(c *gin.Context) {
	bean, err := h.repo.CoffeeBean(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondLookupErr(c, "coffee bean", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "coffeeBean": bean})
}

func (h *Handler) createCoffeeBean(c *gin.Context) {
	var bean catalog.CoffeeBean
	if err := c.ShouldBindJSON(&bean); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	bean.CreatedBy = auth.UserFirebaseUID(c)
	bean.IsVerified = false

	id, err := h.repo.CreateCoffeeBean(c.Request.Context(), bean)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) listEquipment(c *gin.Context) {
	equipmentType := catalog.EquipmentType(strings.TrimSpace(c.Query("type")))

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		items, err := h.repo.SearchEquipment(c.Request.Context(), q, equipmentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "equipment": items})
		return
	}

	items, err := h.repo.TopEquipment(c.Request.Context(), equipmentType, limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "equipment": items})
}

func (h *Handler) getEquipment(c *gin.Context) {
	item, err := h.repo.Equipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondLookupErr(c, "equipment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "equipment": item})
}

func (h *Handler) createEquipment(c *gin.Context) {
	var item catalog.Equipment
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	item.CreatedBy = auth.UserFirebaseUID(c)
	item.IsVerified = false

	id, err := h.repo.CreateEquipment(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) listBrewingMethods(c *gin.Context) {
	methods, err := h.repo.AllBrewingMethods(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "brewingMethods": methods})
}

func (h *Handler) getBrewingMethod(c *gin.Context) {
	method, err := h.repo.BrewingMethod(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondLookupErr(c, "brewing method", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "brewingMethod": method})
}

func (h *Handler) createBrewingMethod(c *gin.Context) {
	var method catalog.BrewingMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	id, err := h.repo.CreateBrewingMethod(c.Request.Context(), method)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func respondLookupErr(c *gin.Context, what string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": what + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

func limitParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return n
}
