package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hatch-egg-webapp/internal/app"
	"hatch-egg-webapp/internal/features/identity"
)

type WalletHandler struct {
	sessions *app.Store
}

func NewWalletHandler(sessions *app.Store) *WalletHandler {
	return &WalletHandler{sessions: sessions}
}

func (h *WalletHandler) RegisterRoutes(router *gin.RouterGroup) {
	wallet := router.Group("/wallet")
	{
		wallet.GET("", h.getWallet)
		wallet.POST("/ready", h.providerReady)
		wallet.POST("/status", h.statusChange)
		wallet.POST("/disconnect", h.disconnect)
	}
}

type walletStatusRequest struct {
	// Address — raw- или friendly-форма; пустая строка — отключение.
	Address string `json:"address"`
}

// @Summary Get connected wallet
// @Description Returns the normalized address of the connected TON wallet, if any.
// @Tags wallet
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} map[string]interface{} "Wallet state"
// @Router /app/wallet [get]
func (h *WalletHandler) getWallet(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	addr, connected := sess.Wallet().Address()
	c.JSON(http.StatusOK, gin.H{"connected": connected, "address": addr})
}

// @Summary Report wallet provider readiness
// @Description The Mini App client reports that the TON Connect provider has loaded, optionally with a previously connected address to restore.
// @Tags wallet
// @Produce json
// @Security TelegramInitData
// @Param request body walletStatusRequest false "Restored address"
// @Success 204 "Accepted"
// @Router /app/wallet/ready [post]
func (h *WalletHandler) providerReady(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	var req walletStatusRequest
	_ = c.ShouldBindJSON(&req)

	if bridge := sess.WalletBridge(); bridge != nil {
		bridge.SetReady(req.Address)
	}
	c.Status(http.StatusNoContent)
}

// @Summary Report wallet status change
// @Description Applies a connect/disconnect event from the client: a non-empty address connects the wallet (normalized server-side), an empty one disconnects it.
// @Tags wallet
// @Produce json
// @Security TelegramInitData
// @Param request body walletStatusRequest true "New wallet status"
// @Success 200 {object} map[string]interface{} "Wallet state after the event"
// @Router /app/wallet/status [post]
func (h *WalletHandler) statusChange(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	var req walletStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if bridge := sess.WalletBridge(); bridge != nil {
		bridge.Publish(req.Address)
	}

	addr, connected := sess.Wallet().Address()
	c.JSON(http.StatusOK, gin.H{"connected": connected, "address": addr})
}

// @Summary Disconnect the wallet
// @Description Clears the connected wallet address for this session.
// @Tags wallet
// @Produce json
// @Security TelegramInitData
// @Success 204 "Disconnected"
// @Router /app/wallet/disconnect [post]
func (h *WalletHandler) disconnect(c *gin.Context) {
	userID, _ := identity.Resolve(c)
	sess := h.sessions.Get(userID)

	sess.Wallet().Disconnect()
	c.Status(http.StatusNoContent)
}
