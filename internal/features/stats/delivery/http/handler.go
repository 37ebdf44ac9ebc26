package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hatch-egg-webapp/internal/app"
	"hatch-egg-webapp/internal/features/identity"
)

type StatsHandler struct {
	sessions *app.Store
}

func NewStatsHandler(sessions *app.Store) *StatsHandler {
	return &StatsHandler{sessions: sessions}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.getStats)
	router.GET("/profile", h.getProfile)
}

// @Summary Get user stats
// @Description Returns the current points counter sample (with the counter animation state), hatched counters and available eggs. Anonymous sessions get a zeroed degraded view.
// @Tags stats
// @Produce json
// @Security TelegramInitData
// @Param user_id query int false "User ID fallback when init data is absent"
// @Success 200 {object} app.StatsView "Stats snapshot"
// @Router /app/stats [get]
func (h *StatsHandler) getStats(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)
	c.JSON(http.StatusOK, sess.Stats(time.Now()))
}

// @Summary Open the profile page
// @Description Activates the profile page: loads referrals, referral earnings and eggs balance, and lazily initializes the wallet connector.
// @Tags stats
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} app.PageView "Profile page state"
// @Router /app/profile [get]
func (h *StatsHandler) getProfile(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)
	view := sess.Navigate(c.Request.Context(), app.PageProfile)
	c.JSON(http.StatusOK, view)
}
