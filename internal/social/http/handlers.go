package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeeist/go-coffeeist-backend/internal/auth"
	"github.com/coffeeist/go-coffeeist-backend/internal/social"
)

type Handler struct {
	counters *social.Counters
}

func New(counters *social.Counters) *Handler {
	return &Handler{counters: counters}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users/:uid")
	g.POST("/follow", h.follow)
	g.DELETE("/follow", h.unfollow)
	g.GET("/follow", h.isFollowing)
	g.GET("/followers", h.followers)
	g.GET("/following", h.following)
}

func (h *Handler) follow(c *gin.Context) {
	err := h.counters.FollowUser(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("uid"))
	switch {
	case errors.Is(err, social.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "cannot follow yourself"})
	case errors.Is(err, social.ErrAlreadyFollowing):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "already following"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func (h *Handler) unfollow(c *gin.Context) {
	err := h.counters.UnfollowUser(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("uid"))
	switch {
	case errors.Is(err, social.ErrNotFollowing):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not following"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func (h *Handler) isFollowing(c *gin.Context) {
	following, err := h.counters.IsFollowing(c.Request.Context(), auth.UserFirebaseUID(c), c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "isFollowing": following})
}

func (h *Handler) followers(c *gin.Context) {
	ids, err := h.counters.Followers(c.Request.Context(), c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "followers": ids})
}

func (h *Handler) following(c *gin.Context) {
	ids, err := h.counters.Following(c.Request.Context(), c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "following": ids})
}
