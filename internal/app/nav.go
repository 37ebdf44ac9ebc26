package app

import (
	"context"

	"hatch-egg-webapp/internal/common/logger"
	"hatch-egg-webapp/internal/features/explorer"
	"hatch-egg-webapp/internal/features/stats"
	"hatch-egg-webapp/internal/features/tasks"
)

// Page — страница мини-аппа; в каждый момент активна ровно одна.
type Page string

const (
	PageHome     Page = "home"
	PageTasks    Page = "tasks"
	PageProfile  Page = "profile"
	PageExplorer Page = "explorer"
)

func validPage(p Page) bool {
	switch p {
	case PageHome, PageTasks, PageProfile, PageExplorer:
		return true
	}
	return false
}

// BackAction — реакция на системную кнопку "назад".
type BackAction string

const (
	BackNavigateHome BackAction = "navigate_home"
	BackCloseApp     BackAction = "close_app"
)

// PageView — результат активации страницы: сама страница, видимость кнопки
// "назад" и данные, загруженные хуком активации.
type PageView struct {
	Page        Page                 `json:"page"`
	BackVisible bool                 `json:"back_visible"`
	Task        *tasks.CheckResult   `json:"task,omitempty"`
	Profile     *stats.ProfileView   `json:"profile,omitempty"`
	Wallet      string               `json:"wallet,omitempty"`
	MyEggs      *explorer.MyEggsView `json:"my_eggs,omitempty"`
	Notices     []string             `json:"notices,omitempty"`
}

// Navigate активирует страницу и выполняет ее хук обновления ровно один
// раз: tasks — проверка подписки, profile — загрузка профиля и ленивая
// инициализация кошелька, explorer — список своих яиц. У home хука нет.
// Неизвестная страница схлопывается в home.
func (s *Session) Navigate(ctx context.Context, page Page) PageView {
	if !validPage(page) {
		page = PageHome
	}

	s.mu.Lock()
	s.page = page
	s.mu.Unlock()

	view := PageView{
		Page:        page,
		BackVisible: page != PageHome,
		Notices:     s.TakeNotices(),
	}

	switch page {
	case PageTasks:
		// Аноним не проверяется по апстриму: без user_id проверка
		// подписки бессмысленна.
		if s.UserID == 0 {
			view.Task = &tasks.CheckResult{Prompt: tasks.NoIdentityPrompt}
			return view
		}
		res, err := s.svc.Tasks.Check(ctx, s.UserID, s.task)
		if err != nil {
			logger.Warn().Err(err).Int64("user_id", s.UserID).Msg("Task refresh failed on navigation")
			res = &tasks.CheckResult{Completed: s.task.Completed()}
		}
		if res.Notice != "" {
			s.refreshStats(ctx)
		}
		view.Task = res
	case PageProfile:
		view.Profile = s.svc.Stats.Profile(ctx, s.UserID)
		if s.walletC != nil {
			s.walletC.Init(s.ctx)
			if addr, ok := s.walletC.Address(); ok {
				view.Wallet = addr
			}
		}
	case PageExplorer:
		myEggs := s.svc.Explorer.MyEggs(ctx, s.explorer, s.UserID)
		view.MyEggs = &myEggs
	}

	return view
}

// CurrentPage возвращает активную страницу.
func (s *Session) CurrentPage() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Back обрабатывает системную кнопку "назад": с любой страницы, кроме
// home, — возврат на home; с home — закрытие приложения (действие хоста).
func (s *Session) Back(ctx context.Context) (BackAction, PageView) {
	if s.CurrentPage() == PageHome {
		return BackCloseApp, PageView{Page: PageHome}
	}
	return BackNavigateHome, s.Navigate(ctx, PageHome)
}
