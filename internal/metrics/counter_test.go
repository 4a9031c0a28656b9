package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter_ConcurrentInc(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), time.Millisecond)
}

func TestGateway_Snapshot(t *testing.T) {
	var g Gateway
	g.DegradedReads.Inc()
	g.DegradedReads.Inc()
	g.SynthesizedOrders.Inc()

	assert.Equal(t, GatewaySnapshot{DegradedReads: 2, SynthesizedOrders: 1}, g.Snapshot())
}
