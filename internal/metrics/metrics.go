package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Process-wide counters reported by the health endpoint.
var (
	APICalls      Counter
	APIFailures   Counter
	Logins        Counter
	LoginFailures Counter
)

// Snapshot is a point-in-time read of the process counters.
type Snapshot struct {
	APICalls      uint64 `json:"apiCalls"`
	APIFailures   uint64 `json:"apiFailures"`
	Logins        uint64 `json:"logins"`
	LoginFailures uint64 `json:"loginFailures"`
}

func Read() Snapshot {
	return Snapshot{
		APICalls:      APICalls.Load(),
		APIFailures:   APIFailures.Load(),
		Logins:        Logins.Load(),
		LoginFailures: LoginFailures.Load(),
	}
}
