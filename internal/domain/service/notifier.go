package service

import (
	"brew/internal/domain/entity"
)

// Notifier is the side channel for non-blocking user-facing messages
type Notifier interface {
	Notify(level entity.NoticeLevel, message string)

	// Since returns the notices newer than id, oldest first
	Since(id uint64) []entity.Notice
}
