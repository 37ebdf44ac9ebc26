package tasks

import "sync"

// RewardNotice показывается один раз при выполнении задания.
const RewardNotice = "Task completed! You earned 20 Eggs! 🎉"

// SubscribePrompt показывается, пока подписки нет.
const SubscribePrompt = "Please subscribe to @hatch_egg channel first"

// NoIdentityPrompt показывается, когда личность пользователя не определена:
// без user_id проверка подписки не выполняется.
const NoIdentityPrompt = "Unable to determine user. Please open through Telegram bot."

// State — состояние единственного задания (подписка на канал) в рамках
// сессии. Выполненность терминальна: повторная отметка — no-op, уведомление
// о награде выдается не больше одного раза.
type State struct {
	mu             sync.Mutex
	completed      bool
	rewardNotified bool
}

// MarkCompleted переводит задание в выполненное. Возвращает true только при
// первом переходе — тогда вызывающий показывает уведомление о награде.
func (s *State) MarkCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = true
	if s.rewardNotified {
		return false
	}
	s.rewardNotified = true
	return true
}

// Completed сообщает, выполнено ли задание.
func (s *State) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}
