package chrono

import (
	"sync"
	"time"
)

// SleepAPI is the interface that anything pacing itself against a remote site should use.
//
// note: fault injection point
type SleepAPI interface {
	Sleep(d time.Duration)
}

// StandardSleep is the standard implementation of SleepAPI using the standard library.
type StandardSleep struct{}

func NewStandardSleep() StandardSleep {
	return StandardSleep{}
}

func (StandardSleep) Sleep(d time.Duration) {
	time.Sleep(d)
}

// FakeSleep records requested sleeps without blocking.
type FakeSleep struct {
	mutex  sync.Mutex
	sleeps []time.Duration
}

func NewFakeSleep() *FakeSleep {
	return &FakeSleep{}
}

func (f *FakeSleep) Sleep(d time.Duration) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.sleeps = append(f.sleeps, d)
}

// Sleeps returns every duration passed to Sleep, in call order.
func (f *FakeSleep) Sleeps() []time.Duration {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	out := make([]time.Duration, len(f.sleeps))
	copy(out, f.sleeps)
	return out
}

// Total is the sum of all requested sleeps.
func (f *FakeSleep) Total() time.Duration {
	var total time.Duration
	for _, d := range f.Sleeps() {
		total += d
	}
	return total
}
