package eggchain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "hatch-egg-webapp/internal/common/errors"
	"hatch-egg-webapp/internal/common/logger"
)

// Client ходит во внешний API бота: stats-эндпоинт и eggchain explorer.
// Вся бизнес-логика (очки, подписки, реестр) живет на той стороне.
type Client struct {
	statsURL   string
	apiRoot    string
	httpClient *http.Client
}

func NewClient(statsURL, apiRoot string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		statsURL: statsURL,
		apiRoot:  apiRoot,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// upstreamError — тело ошибки апстрима. Поле error не гарантировано.
type upstreamError struct {
	Error string `json:"error"`
}

// GetStats возвращает счетчики пользователя.
func (c *Client) GetStats(ctx context.Context, userID int64) (*Stats, error) {
	u := fmt.Sprintf("%s?user_id=%d", c.statsURL, userID)
	var out Stats
	if err := c.getJSON(ctx, u, "get stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckSubscription проверяет (и на стороне бота фиксирует) подписку на канал.
// Апстрим иногда отвечает не-JSON текстом ошибки; такие тела не должны
// приводить к панике — возвращаем типизированную ошибку.
func (c *Client) CheckSubscription(ctx context.Context, userID int64) (*SubscriptionStatus, error) {
	u := fmt.Sprintf("%s/stats/check_subscription?user_id=%d", c.apiRoot, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("check subscription", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("check subscription", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperrors.NewUpstreamError("check subscription", err)
	}

	var out SubscriptionStatus
	if jsonErr := json.Unmarshal(body, &out); jsonErr != nil {
		logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", truncate(string(body), 100)).
			Msg("Non-JSON subscription check response")
		return nil, apperrors.New(apperrors.ErrCodeBadUpstream, "Invalid subscription check response").
			WithDetail("status", resp.StatusCode)
	}

	// Тело распарсилось — доверяем полю subscribed даже при не-2xx статусе,
	// как делал исходный клиент.
	return &out, nil
}

// GetEgg возвращает запись о яйце по его идентификатору.
func (c *Client) GetEgg(ctx context.Context, eggID string) (*Egg, error) {
	u := c.apiRoot + "/egg/" + url.PathEscape(eggID)
	var out Egg
	if err := c.getJSON(ctx, u, "get egg", &out); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.ErrCodeNotFound {
			return nil, apperrors.NewEggNotFoundError(eggID).WithDetail("message", appErr.Message)
		}
		return nil, err
	}
	return &out, nil
}

// GetUserByUsername возвращает профиль пользователя с историей яиц.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*UserProfile, error) {
	u := c.apiRoot + "/user/username/" + url.PathEscape(username)
	var out UserProfile
	if err := c.getJSON(ctx, u, "get user by username", &out); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.ErrCodeNotFound {
			return nil, apperrors.NewUserNotFoundError(username).WithDetail("message", appErr.Message)
		}
		return nil, err
	}
	return &out, nil
}

// GetUserEggs возвращает яйца, отправленные пользователем.
func (c *Client) GetUserEggs(ctx context.Context, userID int64) (*UserEggs, error) {
	u := fmt.Sprintf("%s/user/%d/eggs", c.apiRoot, userID)
	var out UserEggs
	if err := c.getJSON(ctx, u, "get user eggs", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, u, operation string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperrors.NewUpstreamError(operation, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp, operation)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeBadUpstream, "Invalid upstream response: %s", operation)
	}
	return nil
}

// decodeError превращает не-2xx ответ в AppError. Апстрим обычно присылает
// {error: string}, но гарантий нет — тогда подставляем общий текст.
func (c *Client) decodeError(resp *http.Response, operation string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	message := ""
	var ue upstreamError
	if err := json.Unmarshal(body, &ue); err == nil {
		message = ue.Error
	}
	if message == "" {
		message = fmt.Sprintf("upstream returned status %d", resp.StatusCode)
	}

	code := apperrors.ErrCodeUpstreamAPI
	if resp.StatusCode == http.StatusNotFound {
		code = apperrors.ErrCodeNotFound
	}

	return apperrors.New(code, message).
		WithDetail("operation", operation).
		WithDetail("status", resp.StatusCode)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
