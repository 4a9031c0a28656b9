package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value atomic.Uint64
}

func (c *Counter) Inc() {
	c.value.Add(1)
}

func (c *Counter) Load() uint64 {
	return c.value.Load()
}

// Timer measures the wall time of one gateway round trip.
type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Gateway counts how often the storefront ran in degraded mode.
type Gateway struct {
	DegradedReads     Counter
	SynthesizedOrders Counter
	FailedAdminWrites Counter
}

// GatewaySnapshot is a point-in-time copy of Gateway.
type GatewaySnapshot struct {
	DegradedReads     uint64
	SynthesizedOrders uint64
	FailedAdminWrites uint64
}

func (g *Gateway) Snapshot() GatewaySnapshot {
	return GatewaySnapshot{
		DegradedReads:     g.DegradedReads.Load(),
		SynthesizedOrders: g.SynthesizedOrders.Load(),
		FailedAdminWrites: g.FailedAdminWrites.Load(),
	}
}
