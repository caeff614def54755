package discovery

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/avdeccore/transport"
)

// discoverSendInterval is how long the loop waits between discovery
// broadcasts (grounded on CapabilityDelegate's DISCOVER_SEND_DELAY).
const discoverSendInterval = 10 * time.Second

// pollInterval is how often the loop wakes to check for termination
// while waiting out discoverSendInterval, so Stop returns promptly
// instead of blocking for up to discoverSendInterval (grounded on
// CapabilityDelegate's discovery thread, which polls every 10ms rather
// than blocking on a single long sleep).
const pollInterval = 10 * time.Millisecond

// Loop periodically broadcasts a discovery request on an Interface. It
// runs on its own goroutine from Start until Stop, busy-polling a
// termination flag at pollInterval rather than blocking in a single
// long sleep — this is deliberate: it's what lets Stop return within
// pollInterval instead of waiting out the full discoverSendInterval.
type Loop struct {
	iface transport.Interface
	log   *logrus.Entry

	shouldTerminate atomic.Bool
	wg              sync.WaitGroup
	started         bool
	mu              sync.Mutex
}

// NewLoop returns a discovery Loop that broadcasts on iface. Call Start
// to begin.
func NewLoop(iface transport.Interface) *Loop {
	return &Loop{
		iface: iface,
		log:   logrus.WithField("component", "discovery.Loop"),
	}
}

// Start launches the discovery goroutine. Calling Start twice without
// an intervening Stop is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true
	l.shouldTerminate.Store(false)
	l.wg.Add(1)
	go l.run()
}

// Stop signals the discovery goroutine to terminate and waits for it to
// exit. Safe to call more than once, and safe to call without a prior
// Start.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	l.started = false
	l.mu.Unlock()

	l.shouldTerminate.Store(true)
	l.wg.Wait()
}

func (l *Loop) run() {
	defer l.wg.Done()
	for !l.shouldTerminate.Load() {
		if result := l.iface.DiscoverRemoteEntities(); result != transport.ErrorNone {
			l.log.WithField("error", result.String()).Warn("discovery broadcast failed")
		}

		start := time.Now()
		for !l.shouldTerminate.Load() && time.Since(start) <= discoverSendInterval {
			time.Sleep(pollInterval)
		}
	}
}
