package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys recorded by the animator
const (
	KeyFrames      = "frames"
	KeyParticles   = "particles"
	KeyConnections = "connections"
	KeyRepelled    = "repelled"
	KeyFPS         = "fps"
)

// Registry is the central metrics facade
// The animator caches pointers at mount; the frame loop writes directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Line formats every metric as "key value" pairs in registration order, ints first
func (r *Registry) Line() string {
	var sb strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if sb.Len() > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%s %d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		if sb.Len() > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%s %.1f", key, v.Get())
	})
	return sb.String()
}
