package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeeist/go-coffeeist-backend/internal/auth"
	"github.com/coffeeist/go-coffeeist-backend/internal/stash"
	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

type Handler struct {
	repo *stash.Repository
}

func New(repo *stash.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/stash")
	g.GET("/coffee", h.listCoffee)
	g.POST("/coffee", h.addCoffee)
	g.PUT("/coffee/:id", h.updateCoffee)
	g.GET("/wishlist", h.listWishlist)
	g.POST("/wishlist", h.addWish)
	g.DELETE("/wishlist/:id", h.removeWish)
	g.GET("/equipment", h.listEquipment)
	g.POST("/equipment", h.addEquipment)
}

func (h *Handler) listCoffee(c *gin.Context) {
	includeFinished := c.Query("includeFinished") == "true"
	items, err := h.repo.CoffeeInventory(c.Request.Context(), auth.UserFirebaseUID(c), includeFinished)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "inventory": items})
}

func (h *Handler) addCoffee(c *gin.Context) {
	var e stash.CoffeeEntry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	e.UserID = auth.UserFirebaseUID(c)

	id, err := h.repo.AddCoffee(c.Request.Context(), &e)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateCoffee(c *gin.Context) {
	var e stash.CoffeeEntry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	e.ID = c.Param("id")
	e.UserID = auth.UserFirebaseUID(c)

	if err := h.repo.UpdateCoffee(c.Request.Context(), e); err != nil {
		respondWriteErr(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listWishlist(c *gin.Context) {
	items, err := h.repo.Wishlist(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "wishlist": items})
}

func (h *Handler) addWish(c *gin.Context) {
	var e stash.WishEntry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	e.UserID = auth.UserFirebaseUID(c)

	id, err := h.repo.AddWish(c.Request.Context(), &e)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) removeWish(c *gin.Context) {
	err := h.repo.RemoveWish(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("id"))
	if err != nil {
		respondWriteErr(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listEquipment(c *gin.Context) {
	items, err := h.repo.OwnedEquipment(c.Request.Context(), auth.UserFirebaseUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "equipment": items})
}

func (h *Handler) addEquipment(c *gin.Context) {
	var e stash.EquipmentEntry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	e.UserID = auth.UserFirebaseUID(c)

	id, err := h.repo.AddEquipment(c.Request.Context(), &e)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func respondWriteErr(c *gin.Context, err error, fallback int) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "stash entry not found"})
	case errors.Is(err, stash.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(fallback, gin.H{"ok": false, "error": err.Error()})
	}
}
