package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatch-egg-webapp/internal/features/explorer"
	"hatch-egg-webapp/internal/features/stats"
	"hatch-egg-webapp/internal/features/tasks"
	"hatch-egg-webapp/internal/platform/eggchain"
)

// fakeUpstream реализует все клиентские интерфейсы фич поверх одного счетчика
// вызовов.
type fakeUpstream struct {
	mu         sync.Mutex
	statsCalls int
	subCalls   int
	listCalls  int

	stats      *eggchain.Stats
	subscribed bool
	userEggs   *eggchain.UserEggs
	profile    *eggchain.UserProfile
}

func (f *fakeUpstream) GetStats(ctx context.Context, userID int64) (*eggchain.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
	if f.stats == nil {
		return &eggchain.Stats{}, nil
	}
	return f.stats, nil
}

func (f *fakeUpstream) CheckSubscription(ctx context.Context, userID int64) (*eggchain.SubscriptionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subCalls++
	return &eggchain.SubscriptionStatus{Subscribed: f.subscribed}, nil
}

func (f *fakeUpstream) GetEgg(ctx context.Context, eggID string) (*eggchain.Egg, error) {
	return &eggchain.Egg{EggID: eggID}, nil
}

func (f *fakeUpstream) GetUserByUsername(ctx context.Context, username string) (*eggchain.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profile != nil {
		return f.profile, nil
	}
	return &eggchain.UserProfile{Username: username}, nil
}

func (f *fakeUpstream) GetUserEggs(ctx context.Context, userID int64) (*eggchain.UserEggs, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.userEggs == nil {
		return &eggchain.UserEggs{}, nil
	}
	return f.userEggs, nil
}

func (f *fakeUpstream) counts() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statsCalls, f.subCalls, f.listCalls
}

type readyProvider struct {
	restored string
}

func (p *readyProvider) Ready() bool { return true }

func (p *readyProvider) RestoreConnection(ctx context.Context) (string, bool) {
	return p.restored, p.restored != ""
}

func (p *readyProvider) Subscribe(onChange func(string)) func() {
	return func() {}
}

func newTestServices(f *fakeUpstream) *Services {
	return &Services{
		Stats:               stats.NewService(f),
		Tasks:               tasks.NewService(f, "https://t.me/hatch_egg", 10*time.Millisecond),
		Explorer:            explorer.NewController(f, nil),
		StatsPollInterval:   time.Hour,
		CounterAnimDuration: 20 * time.Millisecond,
	}
}

func TestSessionStatsRefresh(t *testing.T) {
	f := &fakeUpstream{stats: &eggchain.Stats{MyEggsHatched: 3, HatchedByMe: 5}}
	sess := newSession(42, newTestServices(f), time.Now())
	defer sess.Close()

	// Поллер делает первый запрос сразу после создания сессии.
	require.Eventually(t, func() bool {
		statsCalls, _, _ := f.counts()
		return statsCalls >= 1
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return sess.Stats(time.Now()).Points == 11
	}, time.Second, 5*time.Millisecond)

	// После окончания перехода отображаемое значение равно целевому.
	v := sess.Stats(time.Now().Add(time.Second))
	assert.Equal(t, int64(11), v.DisplayedPoints)
	assert.False(t, v.Animating)
	assert.Equal(t, int64(3), v.MyEggsHatched)
	assert.Equal(t, int64(5), v.HatchedByMe)
}

func TestSessionDisplayedPointsNeverOvershoot(t *testing.T) {
	f := &fakeUpstream{stats: &eggchain.Stats{MyEggsHatched: 50}}
	svc := newTestServices(f)
	svc.CounterAnimDuration = 200 * time.Millisecond
	sess := newSession(42, svc, time.Now())
	defer sess.Close()

	require.Eventually(t, func() bool {
		return sess.Stats(time.Now()).Points == 100
	}, time.Second, 5*time.Millisecond)

	v := sess.Stats(time.Now())
	assert.LessOrEqual(t, v.DisplayedPoints, v.Points)
	assert.GreaterOrEqual(t, v.DisplayedPoints, int64(0))
}

func TestNavigateHooks(t *testing.T) {
	t.Run("tasks page refreshes task status", func(t *testing.T) {
		f := &fakeUpstream{subscribed: true}
		sess := newSession(42, newTestServices(f), time.Now())
		defer sess.Close()

		view := sess.Navigate(context.Background(), PageTasks)

		assert.Equal(t, PageTasks, view.Page)
		assert.True(t, view.BackVisible)
		require.NotNil(t, view.Task)
		assert.True(t, view.Task.Completed)
		assert.Equal(t, tasks.RewardNotice, view.Task.Notice)

		_, subCalls, _ := f.counts()
		assert.Equal(t, 1, subCalls)
	})

	t.Run("anonymous tasks page skips upstream check", func(t *testing.T) {
		f := &fakeUpstream{subscribed: true}
		sess := newSession(0, newTestServices(f), time.Now())
		defer sess.Close()

		view := sess.Navigate(context.Background(), PageTasks)

		require.NotNil(t, view.Task)
		assert.False(t, view.Task.Completed)
		assert.Equal(t, tasks.NoIdentityPrompt, view.Task.Prompt)

		_, subCalls, _ := f.counts()
		assert.Zero(t, subCalls)
	})

	t.Run("profile page loads profile and wallet", func(t *testing.T) {
		f := &fakeUpstream{stats: &eggchain.Stats{ReferralsCount: 2, ReferralEarned: 40}}
		svc := newTestServices(f)
		svc.WalletProvider = &readyProvider{restored: "0:0000000000000000000000000000000000000000000000000000000000000001"}
		sess := newSession(42, svc, time.Now())
		defer sess.Close()

		view := sess.Navigate(context.Background(), PageProfile)

		require.NotNil(t, view.Profile)
		assert.Equal(t, int64(2), view.Profile.ReferralsCount)
		assert.NotEmpty(t, view.Wallet)
		assert.NotContains(t, view.Wallet, ":")
	})

	t.Run("explorer page loads my eggs", func(t *testing.T) {
		f := &fakeUpstream{userEggs: &eggchain.UserEggs{Eggs: []eggchain.Egg{{
			EggID:         "egg-1",
			SenderID:      42,
			TimestampSent: time.Now().Add(-time.Hour),
		}}}}
		sess := newSession(42, newTestServices(f), time.Now())
		defer sess.Close()

		view := sess.Navigate(context.Background(), PageExplorer)

		require.NotNil(t, view.MyEggs)
		assert.Len(t, view.MyEggs.Eggs, 1)
		_, _, listCalls := f.counts()
		assert.Equal(t, 1, listCalls)
	})

	t.Run("home has no hook and hides back button", func(t *testing.T) {
		f := &fakeUpstream{}
		sess := newSession(42, newTestServices(f), time.Now())
		defer sess.Close()

		view := sess.Navigate(context.Background(), PageHome)

		assert.False(t, view.BackVisible)
		assert.Nil(t, view.Task)
		assert.Nil(t, view.Profile)
		assert.Nil(t, view.MyEggs)
	})

	t.Run("unknown page falls back to home", func(t *testing.T) {
		sess := newSession(42, newTestServices(&fakeUpstream{}), time.Now())
		defer sess.Close()

		view := sess.Navigate(context.Background(), Page("settings"))
		assert.Equal(t, PageHome, view.Page)
	})
}

func TestBack(t *testing.T) {
	sess := newSession(42, newTestServices(&fakeUpstream{}), time.Now())
	defer sess.Close()

	sess.Navigate(context.Background(), PageTasks)
	action, view := sess.Back(context.Background())
	assert.Equal(t, BackNavigateHome, action)
	assert.Equal(t, PageHome, view.Page)
	assert.Equal(t, PageHome, sess.CurrentPage())

	action, _ = sess.Back(context.Background())
	assert.Equal(t, BackCloseApp, action)
}

func TestNotices(t *testing.T) {
	sess := newSession(42, newTestServices(&fakeUpstream{}), time.Now())
	defer sess.Close()

	sess.PushNotice(tasks.RewardNotice)
	sess.PushNotice("")

	notices := sess.TakeNotices()
	require.Len(t, notices, 1)
	assert.Equal(t, tasks.RewardNotice, notices[0])
	assert.Empty(t, sess.TakeNotices())
}

func TestStore(t *testing.T) {
	t.Run("get reuses session", func(t *testing.T) {
		store := NewStore(newTestServices(&fakeUpstream{}), time.Minute)
		defer store.Close()

		a := store.Get(42)
		b := store.Get(42)
		assert.Same(t, a, b)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("sweep closes expired sessions", func(t *testing.T) {
		store := NewStore(newTestServices(&fakeUpstream{}), time.Minute)
		defer store.Close()

		sess := store.Get(42)
		store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		store.sweep()

		assert.Zero(t, store.Len())
		select {
		case <-sess.Context().Done():
		case <-time.After(time.Second):
			t.Fatal("session context not cancelled by sweep")
		}
	})

	t.Run("close cancels all sessions", func(t *testing.T) {
		store := NewStore(newTestServices(&fakeUpstream{}), time.Minute)
		sess := store.Get(7)
		store.Close()

		select {
		case <-sess.Context().Done():
		case <-time.After(time.Second):
			t.Fatal("session context not cancelled by close")
		}
	})
}

func TestShareLink(t *testing.T) {
	link := ShareLink("tohatchbot")
	assert.Equal(t, "https://t.me/share/url?text=%40tohatchbot+egg&url=https%3A%2F%2Ft.me%2Ftohatchbot", link)
}
