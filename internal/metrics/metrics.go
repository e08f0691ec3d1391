// Package metrics exposes Prometheus counters for the portfolio server.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "portfolio"

// Collector groups the server's metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	pageViews     *prometheus.CounterVec
	fragments     *prometheus.CounterVec
	contacts      *prometheus.CounterVec
	typingStreams *prometheus.CounterVec
	typingActive  prometheus.Gauge
}

// New registers the collectors on reg, or on the default registerer when
// reg is nil. Collectors that are already registered are reused.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Full page renders by page.",
		}, []string{"page"}),
		fragments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fragment_requests_total",
			Help:      "HTMX fragment renders by fragment.",
		}, []string{"fragment"}),
		contacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by result.",
		}, []string{"result"}),
		typingStreams: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "typing_streams_total",
			Help:      "Hero typing streams by outcome.",
		}, []string{"outcome"}),
		typingActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "typing_streams_active",
			Help:      "Hero typing streams currently open.",
		}),
	}

	var err error
	if c.pageViews, err = register(reg, c.pageViews); err != nil {
		return nil, err
	}
	if c.fragments, err = register(reg, c.fragments); err != nil {
		return nil, err
	}
	if c.contacts, err = register(reg, c.contacts); err != nil {
		return nil, err
	}
	if c.typingStreams, err = register(reg, c.typingStreams); err != nil {
		return nil, err
	}
	if c.typingActive, err = register(reg, c.typingActive); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return col, fmt.Errorf("register metric: %w", err)
	}
	return col, nil
}

func (c *Collector) PageView(page string) {
	if c == nil {
		return
	}
	c.pageViews.WithLabelValues(page).Inc()
}

func (c *Collector) Fragment(name string) {
	if c == nil {
		return
	}
	c.fragments.WithLabelValues(name).Inc()
}

// Contact results: "sent", "invalid", "disabled", "failed".
func (c *Collector) Contact(result string) {
	if c == nil {
		return
	}
	c.contacts.WithLabelValues(result).Inc()
}

// TypingStarted marks a stream as open and returns the func that closes it
// with an outcome ("completed" or "cancelled").
func (c *Collector) TypingStarted() func(outcome string) {
	if c == nil {
		return func(string) {}
	}
	c.typingActive.Inc()
	return func(outcome string) {
		c.typingActive.Dec()
		c.typingStreams.WithLabelValues(outcome).Inc()
	}
}
