// Package clock formats the current date and time and drives a one-second
// repeating refresh that can be cancelled on teardown.
package clock

import (
	"sync"
	"time"
)

// FormatDate renders "5 May 2024": day, long month name, year.
func FormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// FormatTime renders zero-padded 24h "09:04:05".
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// Handle cancels a schedule started by Every.
type Handle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Every calls fn right away and then once per interval until the returned
// handle is stopped.
func Every(interval time.Duration, fn func(time.Time)) *Handle {
	h := &Handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		fn(time.Now())
		for {
			select {
			case <-h.stop:
				return
			case now := <-ticker.C:
				select {
				case <-h.stop:
					return
				default:
				}
				fn(now)
			}
		}
	}()
	return h
}

// Stop cancels the schedule. It is safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

// Done is closed once the schedule goroutine has exited; fn is never
// called after that.
func (h *Handle) Done() <-chan struct{} { return h.done }
