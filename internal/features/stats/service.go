package stats

import (
	"context"

	"hatch-egg-webapp/internal/common/logger"
	"hatch-egg-webapp/internal/platform/eggchain"
)

// UpstreamClient — подмножество eggchain-клиента, нужное статистике.
type UpstreamClient interface {
	GetStats(ctx context.Context, userID int64) (*eggchain.Stats, error)
}

type Service struct {
	client UpstreamClient
}

func NewService(client UpstreamClient) *Service {
	return &Service{client: client}
}

// Load возвращает свежие счетчики и пересчитанные очки. Любая ошибка
// (нет личности, сеть, не-2xx) схлопывается в нулевое отображение: страница
// остается валидной, ошибка только логируется.
func (s *Service) Load(ctx context.Context, userID int64) (*eggchain.Stats, int64) {
	if userID == 0 {
		logger.Warn().Msg("No user ID for stats load")
		return nil, 0
	}

	data, err := s.client.GetStats(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to load stats")
		return nil, 0
	}

	return data, Points(data)
}

// ProfileView — данные профиля, производные от того же stats-ответа.
type ProfileView struct {
	ReferralsCount int64 `json:"referrals_count"`
	ReferralEarned int64 `json:"referral_earned"`
	EggsBalance    int64 `json:"eggs_balance"`
}

// Profile возвращает рефералов и баланс яиц для страницы профиля.
func (s *Service) Profile(ctx context.Context, userID int64) *ProfileView {
	data, _ := s.Load(ctx, userID)
	if data == nil {
		return &ProfileView{}
	}
	return &ProfileView{
		ReferralsCount: data.ReferralsCount,
		ReferralEarned: data.ReferralEarned,
		EggsBalance:    AvailableEggs(data),
	}
}
