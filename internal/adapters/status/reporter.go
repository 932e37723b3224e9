// Package status records installation progress and reports it through the logger.
package status

import (
	"fmt"
	"sync"

	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/cjtool/internal/ui/style"
)

// Reporter implements ports.StatusReporter.
type Reporter struct {
	mu       sync.Mutex
	logger   ports.Logger
	statuses map[string]domain.InstallStatus
}

// NewReporter creates a new Reporter.
func NewReporter(logger ports.Logger) *Reporter {
	return &Reporter{
		logger:   logger,
		statuses: make(map[string]domain.InstallStatus),
	}
}

// SetStatus records the status of tool and logs the transition.
// Repeating the current status is a no-op.
func (r *Reporter) SetStatus(tool string, status domain.InstallStatus) {
	r.mu.Lock()
	prev, seen := r.statuses[tool]
	r.statuses[tool] = status
	r.mu.Unlock()

	if seen && prev == status {
		return
	}

	switch status {
	case domain.StatusFailed:
		// The logger prefixes warnings with its own icon.
		r.logger.Warn(fmt.Sprintf("%s: %s", tool, status))
	case domain.StatusNone:
		r.logger.Debug(tool + ": idle")
	default:
		icon, _ := style.ForStatus(status)
		r.logger.Info(fmt.Sprintf("%s %s: %s", icon, tool, status))
	}
}

// Status returns the last status recorded for tool.
func (r *Reporter) Status(tool string) domain.InstallStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.statuses[tool]
}
