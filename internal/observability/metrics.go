package observability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts building mutations. Each instance has its own registry so
// commands and tests do not share counters. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ghostsRegistered prometheus.Counter
	roomsAdded       prometheus.Counter
	roomsRejected    prometheus.Counter
	attachments      *prometheus.CounterVec
	teardowns        prometheus.Counter
}

// NewMetrics creates and registers the haunt counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ghostsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "haunt",
			Subsystem: "building",
			Name:      "ghosts_registered_total",
			Help:      "Ghosts registered in a building master list.",
		}),
		roomsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "haunt",
			Subsystem: "building",
			Name:      "rooms_added_total",
			Help:      "Rooms added to a building.",
		}),
		roomsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "haunt",
			Subsystem: "building",
			Name:      "rooms_rejected_total",
			Help:      "Rooms rejected because the room array was full.",
		}),
		attachments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "haunt",
			Subsystem: "room",
			Name:      "ghost_attachments_total",
			Help:      "Ghosts attached to a room roster.",
		}, []string{"room"}),
		teardowns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "haunt",
			Subsystem: "building",
			Name:      "teardowns_total",
			Help:      "Building teardowns.",
		}),
	}
	m.registry.MustRegister(m.ghostsRegistered, m.roomsAdded, m.roomsRejected, m.attachments, m.teardowns)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) RecordGhostRegistered() {
	if m == nil {
		return
	}
	m.ghostsRegistered.Inc()
}

func (m *Metrics) RecordRoomAdded() {
	if m == nil {
		return
	}
	m.roomsAdded.Inc()
}

func (m *Metrics) RecordRoomRejected() {
	if m == nil {
		return
	}
	m.roomsRejected.Inc()
}

func (m *Metrics) RecordAttachment(room string) {
	if m == nil {
		return
	}
	m.attachments.WithLabelValues(room).Inc()
}

func (m *Metrics) RecordTeardown() {
	if m == nil {
		return
	}
	m.teardowns.Inc()
}

// Sample is one gathered counter value.
type Sample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
}

// Key renders the sample as name{k="v",...}.
func (s Sample) Key() string {
	if len(s.Labels) == 0 {
		return s.Name
	}
	keys := make([]string, 0, len(s.Labels))
	for k := range s.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%q", k, s.Labels[k])
	}
	return s.Name + "{" + strings.Join(pairs, ",") + "}"
}

// Snapshot gathers every counter, sorted by name then labels.
func (m *Metrics) Snapshot() ([]Sample, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Value: metric.GetCounter().GetValue()}
			if pairs := metric.GetLabel(); len(pairs) > 0 {
				s.Labels = make(map[string]string, len(pairs))
				for _, lp := range pairs {
					s.Labels[lp.GetName()] = lp.GetValue()
				}
			}
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}
