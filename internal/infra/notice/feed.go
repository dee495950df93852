// Package notice keeps the recent user-facing notices so the UI can poll them.
package notice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"brew/config"
	"brew/internal/domain/entity"
	"brew/internal/domain/service"

	"go.uber.org/fx"
)

// Feed is a bounded, in-memory notice log. Old notices are evicted first.
type Feed struct {
	mu       sync.Mutex
	notices  []entity.Notice
	capacity int
	lastID   uint64
	logger   *slog.Logger
	now      func() time.Time
}

// NewFeed creates a Feed retaining at most capacity notices.
func NewFeed(capacity int, logger *slog.Logger) *Feed {
	if capacity <= 0 {
		capacity = 1
	}

	return &Feed{
		notices:  make([]entity.Notice, 0, capacity),
		capacity: capacity,
		logger:   logger,
		now:      time.Now,
	}
}

// Notify records a notice and mirrors it to the log.
func (f *Feed) Notify(level entity.NoticeLevel, message string) {
	f.mu.Lock()
	f.lastID++
	notice := entity.Notice{
		ID:        f.lastID,
		Level:     level,
		Message:   message,
		CreatedAt: f.now(),
	}
	if len(f.notices) == f.capacity {
		copy(f.notices, f.notices[1:])
		f.notices = f.notices[:len(f.notices)-1]
	}
	f.notices = append(f.notices, notice)
	f.mu.Unlock()

	f.logger.Log(context.Background(), logLevel(level), "Notice", "level", level, "message", message, "noticeID", notice.ID)
}

// Since returns the retained notices with an ID greater than id, oldest first.
func (f *Feed) Since(id uint64) []entity.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]entity.Notice, 0, len(f.notices))
	for _, n := range f.notices {
		if n.ID > id {
			out = append(out, n)
		}
	}

	return out
}

func logLevel(level entity.NoticeLevel) slog.Level {
	switch level {
	case entity.NoticeError:
		return slog.LevelError
	case entity.NoticeWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Params holds dependencies for the Feed, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates the notice feed from configuration
func NewNotifier(params Params) service.Notifier {
	return NewFeed(params.Config.Notice.Capacity, params.Logger)
}

// Module provides the notice FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
