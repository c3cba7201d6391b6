package core

import (
	"context"

	"go.uber.org/zap"
)

// RequestLock is a mutex whose acquisition gives up when a context ends
type RequestLock struct {
	sem chan struct{}
}

func NewRequestLock() *RequestLock {
	return &RequestLock{
		sem: make(chan struct{}, 1),
	}
}

// LockWithContext reports whether the lock was taken before ctx was done
func (c *RequestLock) LockWithContext(ctx context.Context) bool {
	select {
	case c.sem <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}

// Unlock releases the lock. Unlocking a free lock does nothing.
func (c *RequestLock) Unlock() {
	select {
	case <-c.sem:
	default:
	}
}

// CommandLock serializes control commands across every link. Admin checks,
// admin list edits and registry scans all run while holding it.
var CommandLock = NewRequestLock()

// WithCommandLock runs onSuccess while holding CommandLock. If ctx ends first,
// onTimeout runs instead (when non-nil).
func WithCommandLock(ctx context.Context, operation string, onSuccess func(), onTimeout func()) {
	withLock(ctx, CommandLock, operation, onSuccess, onTimeout)
}

func withLock(ctx context.Context, lock *RequestLock, operation string, onSuccess func(), onTimeout func()) {
	var logger *zap.SugaredLogger
	if logCtx, ok := ctx.(interface{ GetLogger() *zap.SugaredLogger }); ok {
		logger = logCtx.GetLogger()
	} else {
		logger = GetLogger()
	}

	if !lock.LockWithContext(ctx) {
		logger.Warnw("Timed out waiting for command lock", "operation", operation)
		if onTimeout != nil {
			onTimeout()
		}
		return
	}
	logger.Debugw("Command lock held", "operation", operation)
	defer lock.Unlock()

	onSuccess()
}
