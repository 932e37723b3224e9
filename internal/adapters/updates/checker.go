// Package updates compares the installed toolchain version with the latest release.
package updates

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
)

// Checker implements ports.UpdateChecker.
type Checker struct {
	feed     ports.ReleaseFeed
	throttle ports.Throttle
	clock    clockwork.Clock
	logger   ports.Logger
}

// NewChecker creates a new Checker.
func NewChecker(feed ports.ReleaseFeed, throttle ports.Throttle, clock clockwork.Clock, logger ports.Logger) *Checker {
	return &Checker{
		feed:     feed,
		throttle: throttle,
		clock:    clock,
		logger:   logger,
	}
}

// Check queries the latest release unless a check ran within the throttle
// interval. An empty installedVersion only reports the latest tag.
func (c *Checker) Check(ctx context.Context, installedVersion string) (*domain.UpdateReport, error) {
	report := &domain.UpdateReport{InstalledVersion: installedVersion}

	now := c.clock.Now()
	if !c.throttle.TryAcquire(now) {
		c.logger.Debug("skipping update check, last check was less than an hour ago")
		return report, nil
	}

	rel, err := c.feed.Latest(ctx, domain.ReleaseRepository)
	if err != nil {
		c.throttle.Abandon(now)
		return nil, domain.WrapKind(domain.ErrUpdateCheckFailed, err)
	}

	report.Checked = true
	report.CheckedAt = now
	report.LatestTag = rel.TagName
	if installedVersion != "" {
		report.UpdateAvailable = IsNewer(rel.TagName, installedVersion)
	}
	return report, nil
}

// IsNewer reports whether latest is a newer version than installed.
// Versions that are not valid semver compare by tag equality only.
func IsNewer(latest, installed string) bool {
	lv, lerr := semver.NewVersion(latest)
	iv, ierr := semver.NewVersion(installed)
	if lerr != nil || ierr != nil {
		return normalize(latest) != normalize(installed)
	}
	return lv.GreaterThan(iv)
}

func normalize(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "v")
}
