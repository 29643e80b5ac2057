package global

import (
	"sync"

	"niri-app-hotkey/pkg/logger"
	"niri-app-hotkey/pkg/notify"
)

// Only process-wide services live here. Configuration, compositor
// snapshots, and plans are passed explicitly through the pipeline.
var (
	log      *logger.Logger
	notifier *notify.NotifyService
	initOnce sync.Once
	mu       sync.RWMutex
)

func InitGlobals(logger *logger.Logger, notifyCommand string) {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		log = logger
		notifier = notify.NewNotifyService(notifyCommand, logger)
	})
}

// GetLogger returns the global logger instance
func GetLogger() *logger.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// GetNotifier returns the global notifier instance
func GetNotifier() *notify.NotifyService {
	mu.RLock()
	defer mu.RUnlock()
	return notifier
}
