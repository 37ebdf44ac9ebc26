package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hatch-egg-webapp/internal/app"
	apperrors "hatch-egg-webapp/internal/common/errors"
	"hatch-egg-webapp/internal/common/middleware"
	"hatch-egg-webapp/internal/features/explorer"
	"hatch-egg-webapp/internal/features/identity"
)

type ExplorerHandler struct {
	controller *explorer.Controller
	sessions   *app.Store
	logger     *zap.Logger
}

func NewExplorerHandler(controller *explorer.Controller, sessions *app.Store, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{controller: controller, sessions: sessions, logger: logger}
}

func (h *ExplorerHandler) RegisterRoutes(router *gin.RouterGroup) {
	exp := router.Group("/explorer")
	{
		exp.GET("/search", h.search)
		exp.GET("/my-eggs", h.myEggs)
		exp.POST("/tab", h.switchTab)
	}
}

// @Summary Search the eggchain
// @Description Dispatches the query: "@username" looks up a user profile, anything else is treated as an egg ID. The whole result region is replaced and returned as an HTML fragment.
// @Tags explorer
// @Produce html
// @Security TelegramInitData
// @Param q query string true "Egg ID or @username"
// @Success 200 {string} string "Result region fragment"
// @Router /app/explorer/search [get]
func (h *ExplorerHandler) search(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	view := h.controller.Search(c.Request.Context(), sess.Explorer(), c.Query("q"))
	h.renderRegion(c, view)
}

// @Summary Get my sent eggs
// @Description Returns the caller's sent eggs as an HTML fragment. The list is suppressed (empty fragment) while another user's profile is open in the result region.
// @Tags explorer
// @Produce html
// @Security TelegramInitData
// @Success 200 {string} string "My eggs fragment"
// @Router /app/explorer/my-eggs [get]
func (h *ExplorerHandler) myEggs(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	view := h.controller.MyEggs(c.Request.Context(), sess.Explorer(), userID)
	html, err := explorer.RenderMyEggs(view)
	if err != nil {
		middleware.AbortWithError(c, err, h.logger)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// @Summary Switch profile history tab
// @Description Switches the sent/hatched tab on already loaded profile data, without re-fetching, and returns the updated region fragment.
// @Tags explorer
// @Produce html
// @Security TelegramInitData
// @Param tab query string true "Tab name: sent or hatched"
// @Success 200 {string} string "Result region fragment"
// @Failure 400 {object} errors.AppError "No profile open or unknown tab"
// @Router /app/explorer/tab [post]
func (h *ExplorerHandler) switchTab(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	if !sess.Explorer().SwitchTab(explorer.Tab(c.Query("tab"))) {
		middleware.AbortWithError(c, apperrors.NewValidationError("tab", "no profile open or unknown tab"), h.logger)
		return
	}
	h.renderRegion(c, sess.Explorer().Snapshot())
}

func (h *ExplorerHandler) renderRegion(c *gin.Context, view explorer.View) {
	html, err := explorer.RenderRegion(view)
	if err != nil {
		middleware.AbortWithError(c, err, h.logger)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
