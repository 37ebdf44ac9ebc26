package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hatch-egg-webapp/internal/app"
	"hatch-egg-webapp/internal/features/identity"
)

// AppHandler обслуживает навигацию между страницами и share-ссылку.
type AppHandler struct {
	sessions    *app.Store
	botUsername string
}

func NewAppHandler(sessions *app.Store, botUsername string) *AppHandler {
	return &AppHandler{sessions: sessions, botUsername: botUsername}
}

func (h *AppHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/navigate", h.navigate)
	router.POST("/back", h.back)
	router.GET("/share-link", h.shareLink)
}

type navigateRequest struct {
	Page string `json:"page" binding:"required"`
}

// @Summary Navigate to a page
// @Description Activates a page and runs its refresh hook exactly once: tasks — subscription check, profile — profile load and lazy wallet init, explorer — my eggs load. Unknown pages fall back to home.
// @Tags app
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param request body navigateRequest true "Target page"
// @Success 200 {object} app.PageView "Activated page state"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /app/navigate [post]
func (h *AppHandler) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)
	c.JSON(http.StatusOK, sess.Navigate(c.Request.Context(), app.Page(req.Page)))
}

// @Summary Handle the system back button
// @Description From any non-home page navigates back home; from home instructs the host to close the app.
// @Tags app
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} map[string]interface{} "Back action and resulting page state"
// @Router /app/back [post]
func (h *AppHandler) back(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	action, view := sess.Back(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"action": action, "view": view})
}

// @Summary Get the share link
// @Description Returns the t.me share link that opens a forward dialog with the "@bot egg" message.
// @Tags app
// @Produce json
// @Success 200 {object} map[string]string "Share link"
// @Router /app/share-link [get]
func (h *AppHandler) shareLink(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"link": app.ShareLink(h.botUsername)})
}
