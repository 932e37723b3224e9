package updates_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjtool/internal/adapters/throttle"
	"go.trai.ch/cjtool/internal/adapters/updates"
	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newChecker(t *testing.T, feed *mocks.MockReleaseFeed, clock *clockwork.FakeClock) *updates.Checker {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return updates.NewChecker(feed, throttle.New(clock, throttle.DefaultInterval), clock, log)
}

func TestChecker_ReportsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockReleaseFeed(ctrl)
	feed.EXPECT().Latest(gomock.Any(), "cangjie-lang/cangjie").Return(&domain.Release{TagName: "v1.2.0"}, nil)

	clock := clockwork.NewFakeClock()
	report, err := newChecker(t, feed, clock).Check(context.Background(), "1.1.3")
	require.NoError(t, err)

	assert.True(t, report.Checked)
	assert.True(t, report.UpdateAvailable)
	assert.Equal(t, "v1.2.0", report.LatestTag)
	assert.Equal(t, "1.1.3", report.InstalledVersion)
	assert.Equal(t, clock.Now(), report.CheckedAt)
}

func TestChecker_ThrottledMakesNoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockReleaseFeed(ctrl)
	feed.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(&domain.Release{TagName: "v1.0.0"}, nil).Times(2)

	clock := clockwork.NewFakeClock()
	checker := newChecker(t, feed, clock)

	_, err := checker.Check(context.Background(), "1.0.0")
	require.NoError(t, err)

	clock.Advance(3599 * time.Second)
	report, err := checker.Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.False(t, report.Checked)
	assert.Empty(t, report.LatestTag)

	clock.Advance(2 * time.Second)
	report, err = checker.Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.True(t, report.Checked)
	assert.False(t, report.UpdateAvailable)
}

func TestChecker_FailedQueryIsNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockReleaseFeed(ctrl)
	gomock.InOrder(
		feed.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(nil, domain.ErrReleaseQueryFailed),
		feed.EXPECT().Latest(gomock.Any(), gomock.Any()).Return(&domain.Release{TagName: "v1.0.0"}, nil),
	)

	checker := newChecker(t, feed, clockwork.NewFakeClock())

	_, err := checker.Check(context.Background(), "1.0.0")
	require.ErrorIs(t, err, domain.ErrUpdateCheckFailed)
	assert.ErrorIs(t, err, domain.ErrReleaseQueryFailed)

	report, err := checker.Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.True(t, report.Checked)
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest    string
		installed string
		want      bool
	}{
		{latest: "v1.2.0", installed: "1.1.9", want: true},
		{latest: "v1.2.0", installed: "v1.2.0", want: false},
		{latest: "1.0.0", installed: "1.0.1", want: false},
		{latest: "v1.0.0", installed: "1.0.0-beta.1", want: true},
		{latest: "nightly-20260101", installed: "nightly-20251201", want: true},
		{latest: "nightly-20260101", installed: "nightly-20260101", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.latest+"_vs_"+tt.installed, func(t *testing.T) {
			assert.Equal(t, tt.want, updates.IsNewer(tt.latest, tt.installed))
		})
	}
}

func TestChecker_ConcurrentChecksQueryOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockReleaseFeed(ctrl)

	started := make(chan struct{})
	unblock := make(chan struct{})
	feed.EXPECT().Latest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) (*domain.Release, error) {
			close(started)
			<-unblock
			return &domain.Release{TagName: "v1.2.0"}, nil
		}).Times(1)

	checker := newChecker(t, feed, clockwork.NewFakeClock())

	type result struct {
		report *domain.UpdateReport
		err    error
	}
	first := make(chan result, 1)
	go func() {
		report, err := checker.Check(context.Background(), "1.1.0")
		first <- result{report: report, err: err}
	}()
	<-started

	report, err := checker.Check(context.Background(), "1.1.0")
	require.NoError(t, err)
	assert.False(t, report.Checked)

	close(unblock)
	res := <-first
	require.NoError(t, res.err)
	assert.True(t, res.report.Checked)
	assert.True(t, res.report.UpdateAvailable)
}
