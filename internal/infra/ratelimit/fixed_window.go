package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count     int
	startedAt time.Time
}

/*
單機版, 會有窗口交界的突刺問題
*/
type FixedWindow struct {
	LimiterConfig
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewFixedWindow(config *LimiterConfig) *FixedWindow {
	cfg := GetDefaultLimiterConfig()
	if config != nil {
		cfg = config.normalize()
	}
	return &FixedWindow{
		LimiterConfig: cfg,
		windows:       make(map[string]*window),
		now:           time.Now,
	}
}

func (w *FixedWindow) Allow(_ context.Context, key string) (bool, error) {
	current := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	win, ok := w.windows[key]
	if !ok || current.Sub(win.startedAt) >= w.Window {
		w.sweep(current)
		win = &window{startedAt: current}
		w.windows[key] = win
	}
	if win.count+1 > w.Capacity {
		return false, nil
	}
	win.count++
	return true, nil
}

// sweep 清掉已過期的窗口, 需持有鎖
func (w *FixedWindow) sweep(current time.Time) {
	for k, win := range w.windows {
		if current.Sub(win.startedAt) >= w.Window {
			delete(w.windows, k)
		}
	}
}
