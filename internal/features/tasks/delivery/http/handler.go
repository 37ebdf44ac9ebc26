package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hatch-egg-webapp/internal/app"
	"hatch-egg-webapp/internal/common/logger"
	"hatch-egg-webapp/internal/common/middleware"
	"hatch-egg-webapp/internal/features/identity"
	"hatch-egg-webapp/internal/features/tasks"
)

type TaskHandler struct {
	service  *tasks.Service
	sessions *app.Store
	logger   *zap.Logger
}

func NewTaskHandler(service *tasks.Service, sessions *app.Store, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{service: service, sessions: sessions, logger: logger}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	task := router.Group("/task")
	{
		task.GET("", h.getTask)
		task.POST("/open", h.openChannel)
		task.POST("/check", h.checkTask)
	}
}

// @Summary Get task state
// @Description Returns whether the subscription task is already completed for this session.
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} map[string]bool "Task state"
// @Router /app/task [get]
func (h *TaskHandler) getTask(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)
	c.JSON(http.StatusOK, gin.H{"completed": sess.Task().Completed()})
}

// @Summary Open the channel link
// @Description Returns the channel link for the subscription task and schedules a single delayed re-check. A reward notice from the re-check is queued on the session.
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} map[string]string "Channel link"
// @Failure 401 {object} map[string]string "Unknown user"
// @Router /app/task/open [post]
func (h *TaskHandler) openChannel(c *gin.Context) {
	userID, ok := identity.Resolve(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tasks.NoIdentityPrompt})
		return
	}
	sess := h.sessions.Get(userID)

	// Перепроверка живет на контексте сессии, не запроса: она должна
	// пережить этот HTTP-вызов.
	link := h.service.Open(sess.Context(), userID, sess.Task(), func(res *tasks.CheckResult, err error) {
		if err != nil {
			logger.Warn().Err(err).Int64("user_id", userID).Msg("Delayed task re-check failed")
			return
		}
		if res.Notice != "" {
			sess.PushNotice(res.Notice)
			// Награда меняет баланс — перечитываем статистику сразу.
			sess.RefreshStats(sess.Context())
		}
	})

	c.JSON(http.StatusOK, gin.H{"link": link})
}

// @Summary Check the subscription task
// @Description Verifies channel subscription upstream and applies the result. Completion is idempotent; the reward notice is returned at most once.
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} tasks.CheckResult "Check result"
// @Failure 401 {object} map[string]string "Unknown user"
// @Failure 502 {object} errors.AppError "Upstream error"
// @Router /app/task/check [post]
func (h *TaskHandler) checkTask(c *gin.Context) {
	userID, ok := identity.Resolve(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tasks.NoIdentityPrompt})
		return
	}
	sess := h.sessions.Get(userID)

	res, err := h.service.Check(c.Request.Context(), userID, sess.Task())
	if err != nil {
		middleware.AbortWithError(c, err, h.logger)
		return
	}
	if res.Notice != "" {
		sess.RefreshStats(c.Request.Context())
	}

	c.JSON(http.StatusOK, res)
}
