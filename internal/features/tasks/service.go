package tasks

import (
	"context"
	"time"

	"hatch-egg-webapp/internal/common/logger"
	"hatch-egg-webapp/internal/platform/eggchain"
)

// SubscriptionClient — подмножество eggchain-клиента для проверки подписки.
type SubscriptionClient interface {
	CheckSubscription(ctx context.Context, userID int64) (*eggchain.SubscriptionStatus, error)
}

type Service struct {
	client       SubscriptionClient
	channelLink  string
	recheckDelay time.Duration
}

func NewService(client SubscriptionClient, channelLink string, recheckDelay time.Duration) *Service {
	if recheckDelay <= 0 {
		recheckDelay = 2 * time.Second
	}
	return &Service{client: client, channelLink: channelLink, recheckDelay: recheckDelay}
}

// CheckResult — итог проверки для рендера карточки задания.
type CheckResult struct {
	Subscribed bool   `json:"subscribed"`
	Completed  bool   `json:"completed"`
	Notice     string `json:"notice,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
}

// Check спрашивает апстрим о подписке и применяет результат к состоянию
// задания. Не-JSON тела апстрима уже поглощены клиентом и приходят сюда
// обычной ошибкой.
func (s *Service) Check(ctx context.Context, userID int64, st *State) (*CheckResult, error) {
	status, err := s.client.CheckSubscription(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Subscription check failed")
		return nil, err
	}
	return s.apply(st, status.Subscribed), nil
}

// apply переводит состояние задания; выполненность идемпотентна.
func (s *Service) apply(st *State, subscribed bool) *CheckResult {
	res := &CheckResult{Subscribed: subscribed}
	if !subscribed {
		res.Prompt = SubscribePrompt
		return res
	}

	res.Completed = true
	if st.MarkCompleted() {
		res.Notice = RewardNotice
	}
	return res
}

// Open возвращает ссылку на канал и планирует ровно одну отложенную
// перепроверку: пользователю дается фиксированная пауза на подписку после
// открытия ссылки. Никакого поллинга сверх этого; отмена контекста сессии
// снимает перепроверку.
func (s *Service) Open(ctx context.Context, userID int64, st *State, onResult func(*CheckResult, error)) string {
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.recheckDelay):
		}

		res, err := s.Check(ctx, userID, st)
		if onResult != nil {
			onResult(res, err)
		}
	}()

	return s.channelLink
}
