package metrics

import (
	"sync"
	"time"
)

const maxObservations = 100

// Collector is a small in-process metrics sink. Counters accumulate forever;
// latency and size observations keep a sliding window of the last 100 samples.
type Collector struct {
	mu        sync.RWMutex
	counters  map[string]int64
	latencies map[string][]time.Duration
	sizes     map[string][]float64
}

func NewCollector() *Collector {
	return &Collector{
		counters:  make(map[string]int64),
		latencies: make(map[string][]time.Duration),
		sizes:     make(map[string][]float64),
	}
}

func (c *Collector) Increment(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[name]++
}

func (c *Collector) ObserveLatency(name string, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	window := append(c.latencies[name], d)
	if len(window) > maxObservations {
		window = window[len(window)-maxObservations:]
	}
	c.latencies[name] = window
}

func (c *Collector) ObserveSize(name string, bytes float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	window := append(c.sizes[name], bytes)
	if len(window) > maxObservations {
		window = window[len(window)-maxObservations:]
	}
	c.sizes[name] = window
}

func (c *Collector) Counters() map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]int64, len(c.counters))
	for name, value := range c.counters {
		out[name] = value
	}
	return out
}

// Latencies reports the average of each metric's window in milliseconds.
func (c *Collector) Latencies() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]float64, len(c.latencies))
	for name, window := range c.latencies {
		if len(window) == 0 {
			continue
		}
		var sum time.Duration
		for _, d := range window {
			sum += d
		}
		out[name] = float64(sum) / float64(len(window)) / float64(time.Millisecond)
	}
	return out
}

// Sizes reports the average and maximum of each size metric's window.
func (c *Collector) Sizes() map[string]map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]map[string]float64, len(c.sizes))
	for name, window := range c.sizes {
		if len(window) == 0 {
			continue
		}
		var sum, max float64
		for _, v := range window {
			sum += v
			if v > max {
				max = v
			}
		}
		out[name] = map[string]float64{
			"avg_bytes": sum / float64(len(window)),
			"max_bytes": max,
		}
	}
	return out
}
