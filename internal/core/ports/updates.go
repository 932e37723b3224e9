package ports

import (
	"context"
	"time"

	"go.trai.ch/cjtool/internal/core/domain"
)

// Throttle rate-limits update checks.
//
//go:generate go run go.uber.org/mock/mockgen -source=updates.go -destination=mocks/mock_updates.go -package=mocks
type Throttle interface {
	// ShouldCheck reports whether enough time has passed since the last recorded check.
	ShouldCheck() bool

	// RecordChecked stores now as the time of the last check.
	RecordChecked(now time.Time)

	// TryAcquire records now as the last check when a check is due and
	// reports whether it did. The test and the record happen under one lock.
	TryAcquire(now time.Time) bool

	// Abandon restores the record that preceded the acquisition made at
	// acquiredAt, unless a later check has been recorded since.
	Abandon(acquiredAt time.Time)
}

// UpdateChecker compares the installed language server against the latest release.
type UpdateChecker interface {
	// Check queries the latest release unless throttled.
	Check(ctx context.Context, installedVersion string) (*domain.UpdateReport, error)
}
