package eggchain

import "time"

// Stats — агрегированные счетчики пользователя из stats API. Отсутствующие
// числовые поля трактуются как 0 (кроме FreeEggs, см. дефолт в возвращаемом
// балансе).
type Stats struct {
	MyEggsHatched  int64  `json:"my_eggs_hatched"`
	HatchedByMe    int64  `json:"hatched_by_me"`
	ReferralsCount int64  `json:"referrals_count"`
	ReferralEarned int64  `json:"referral_earned"`
	AvailableEggs  *int64 `json:"available_eggs,omitempty"`
	FreeEggs       *int64 `json:"free_eggs,omitempty"`
	PaidEggs       int64  `json:"paid_eggs,omitempty"`
	DailyEggsSent  int64  `json:"daily_eggs_sent,omitempty"`
}

// Egg — запись о подарке в eggchain. Статус выводится исключительно из
// наличия HatchedBy; отдельного флага нет.
type Egg struct {
	EggID             string     `json:"egg_id"`
	SenderID          int64      `json:"sender_id"`
	SenderUsername    string     `json:"sender_username,omitempty"`
	SenderAvatar      string     `json:"sender_avatar,omitempty"`
	HatchedBy         *int64     `json:"hatched_by,omitempty"`
	HatchedByUsername string     `json:"hatched_by_username,omitempty"`
	HatchedByAvatar   string     `json:"hatched_by_avatar,omitempty"`
	TimestampSent     time.Time  `json:"timestamp_sent"`
	TimestampHatched  *time.Time `json:"timestamp_hatched,omitempty"`
}

// Hatched сообщает, вылуплено ли яйцо. Терминальное состояние.
func (e *Egg) Hatched() bool {
	return e.HatchedBy != nil
}

// UserProfile — профиль пользователя из eggchain с историей яиц.
type UserProfile struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	EggsSent     []Egg  `json:"eggs_sent"`
	EggsHatched  []Egg  `json:"eggs_hatched"`
	TotalSent    int64  `json:"total_sent"`
	TotalHatched int64  `json:"total_hatched"`
}

// UserEggs — список отправленных пользователем яиц.
type UserEggs struct {
	Eggs []Egg `json:"eggs"`
}

// SubscriptionStatus — результат проверки подписки на канал.
type SubscriptionStatus struct {
	Subscribed bool `json:"subscribed"`
}
