package utils

import (
	"sync"
	"time"
)

// One-shot success messages, keyed by session id. A message is set
// right before the post-mutation redirect and consumed by the next
// render, so it cannot be replayed by copying a URL.

type flashEntry struct {
	message string
	expiry  time.Time
}

var (
	flashes    = make(map[string]flashEntry)
	flashMutex sync.Mutex
)

// SetFlash stores the message for the session, replacing any pending one.
func SetFlash(sessionID, message string) {
	if sessionID == "" {
		return
	}
	flashMutex.Lock()
	defer flashMutex.Unlock()
	flashes[sessionID] = flashEntry{message: message, expiry: time.Now().Add(5 * time.Minute)}
}

// PopFlash returns the pending message for the session and removes it.
func PopFlash(sessionID string) string {
	flashMutex.Lock()
	defer flashMutex.Unlock()

	entry, exists := flashes[sessionID]
	if !exists {
		return ""
	}
	delete(flashes, sessionID)
	if time.Now().After(entry.expiry) {
		return ""
	}
	return entry.message
}

// ClearFlash drops any pending message, used on logout.
func ClearFlash(sessionID string) {
	flashMutex.Lock()
	defer flashMutex.Unlock()
	delete(flashes, sessionID)
}
