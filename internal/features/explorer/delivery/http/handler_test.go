package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hatch-egg-webapp/internal/app"
	apperrors "hatch-egg-webapp/internal/common/errors"
	"hatch-egg-webapp/internal/features/explorer"
	"hatch-egg-webapp/internal/features/stats"
	"hatch-egg-webapp/internal/features/tasks"
	"hatch-egg-webapp/internal/platform/eggchain"
)

type stubChain struct{}

func (s *stubChain) GetStats(ctx context.Context, userID int64) (*eggchain.Stats, error) {
	return &eggchain.Stats{}, nil
}

func (s *stubChain) CheckSubscription(ctx context.Context, userID int64) (*eggchain.SubscriptionStatus, error) {
	return &eggchain.SubscriptionStatus{}, nil
}

func (s *stubChain) GetEgg(ctx context.Context, eggID string) (*eggchain.Egg, error) {
	return nil, apperrors.NewEggNotFoundError(eggID)
}

func (s *stubChain) GetUserByUsername(ctx context.Context, username string) (*eggchain.UserProfile, error) {
	return nil, apperrors.NewUserNotFoundError(username)
}

func (s *stubChain) GetUserEggs(ctx context.Context, userID int64) (*eggchain.UserEggs, error) {
	return &eggchain.UserEggs{}, nil
}

func newExplorerTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	chain := &stubChain{}
	ctrl := explorer.NewController(chain, nil)
	sessions := app.NewStore(&app.Services{
		Stats:             stats.NewService(chain),
		Tasks:             tasks.NewService(chain, "https://t.me/hatch_egg", time.Minute),
		Explorer:          ctrl,
		StatsPollInterval: time.Hour,
	}, time.Hour)
	t.Cleanup(sessions.Close)

	router := gin.New()
	NewExplorerHandler(ctrl, sessions, zap.NewNop()).RegisterRoutes(router.Group("/app"))
	return router
}

func TestSearchReturnsFragment(t *testing.T) {
	router := newExplorerTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/app/explorer/search?q=unknown-egg&user_id=7", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Egg not found")
}

func TestSwitchTabWithoutProfileReturnsValidationError(t *testing.T) {
	router := newExplorerTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/app/explorer/tab?tab=sent&user_id=7", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, string(apperrors.ErrCodeValidation), resp.Error.Code)
}
