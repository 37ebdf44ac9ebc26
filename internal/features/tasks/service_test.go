package tasks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hatch-egg-webapp/internal/common/errors"
	"hatch-egg-webapp/internal/platform/eggchain"
)

type fakeSubClient struct {
	subscribed bool
	err        error
	calls      atomic.Int64
}

func (f *fakeSubClient) CheckSubscription(ctx context.Context, userID int64) (*eggchain.SubscriptionStatus, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &eggchain.SubscriptionStatus{Subscribed: f.subscribed}, nil
}

func TestCheckNotSubscribed(t *testing.T) {
	svc := NewService(&fakeSubClient{subscribed: false}, "https://t.me/hatch_egg", time.Second)
	st := &State{}

	res, err := svc.Check(context.Background(), 42, st)
	require.NoError(t, err)
	assert.False(t, res.Subscribed)
	assert.False(t, res.Completed)
	assert.Equal(t, SubscribePrompt, res.Prompt)
	assert.False(t, st.Completed())
}

func TestCheckSubscribedCompletesOnce(t *testing.T) {
	svc := NewService(&fakeSubClient{subscribed: true}, "https://t.me/hatch_egg", time.Second)
	st := &State{}

	first, err := svc.Check(context.Background(), 42, st)
	require.NoError(t, err)
	assert.True(t, first.Completed)
	assert.Equal(t, RewardNotice, first.Notice)

	// Повторная проверка: то же выполненное состояние, без второго уведомления.
	second, err := svc.Check(context.Background(), 42, st)
	require.NoError(t, err)
	assert.True(t, second.Completed)
	assert.Empty(t, second.Notice)
	assert.True(t, st.Completed())
}

func TestCheckSurfacesUpstreamError(t *testing.T) {
	svc := NewService(&fakeSubClient{err: apperrors.New(apperrors.ErrCodeBadUpstream, "Invalid subscription check response")}, "", time.Second)

	_, err := svc.Check(context.Background(), 42, &State{})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeBadUpstream, appErr.Code)
}

func TestOpenSchedulesSingleRecheck(t *testing.T) {
	client := &fakeSubClient{subscribed: true}
	svc := NewService(client, "https://t.me/hatch_egg", 10*time.Millisecond)
	st := &State{}

	results := make(chan *CheckResult, 1)
	link := svc.Open(context.Background(), 42, st, func(res *CheckResult, err error) {
		require.NoError(t, err)
		results <- res
	})
	assert.Equal(t, "https://t.me/hatch_egg", link)
	assert.Equal(t, int64(0), client.calls.Load(), "no check before the delay")

	select {
	case res := <-results:
		assert.True(t, res.Completed)
		assert.Equal(t, RewardNotice, res.Notice)
	case <-time.After(time.Second):
		t.Fatal("recheck never fired")
	}

	// Ровно одна перепроверка на клик.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(1), client.calls.Load())
}

func TestOpenRecheckCancelled(t *testing.T) {
	client := &fakeSubClient{subscribed: true}
	svc := NewService(client, "https://t.me/hatch_egg", 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	svc.Open(ctx, 42, &State{}, func(res *CheckResult, err error) {
		t.Error("recheck fired after cancel")
	})
	cancel()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), client.calls.Load())
}

func TestMarkCompletedIdempotent(t *testing.T) {
	st := &State{}
	assert.True(t, st.MarkCompleted())
	assert.False(t, st.MarkCompleted())
	assert.True(t, st.Completed())
}
