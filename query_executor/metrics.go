package executor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	cmdInsert     = "insert"
	cmdRemove     = "remove"
	cmdLookup     = "lookup"
	cmdLowerBound = "lowerbound"
)

// Metrics counts executed commands and exposes the tree's shape. A nil
// *Metrics records nothing.
type Metrics struct {
	commands    *prometheus.CounterVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewMetrics registers the collectors on reg. Tree gauges are computed from
// tree.Stats() at scrape time.
func NewMetrics(reg prometheus.Registerer, tree *Index) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bptree_commands_total",
			Help: "number of protocol commands applied, by verb",
		}, []string{"command"}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "bptree_lookup_cache_hits_total",
			Help: "lookups answered from the lookup cache",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "bptree_lookup_cache_misses_total",
			Help: "lookups that went to the tree with the cache enabled",
		}),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bptree_keys",
		Help: "number of keys stored in the tree",
	}, func() float64 { return float64(tree.Len()) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bptree_height",
		Help: "number of levels in the tree",
	}, func() float64 { return float64(tree.Height()) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bptree_nodes",
		Help: "number of nodes in the arena",
	}, func() float64 { return float64(tree.Stats().Nodes) })
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "bptree_leaf_splits_total",
		Help: "leaf splits since the tree was created",
	}, func() float64 { return float64(tree.Stats().LeafSplits) })
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "bptree_internal_splits_total",
		Help: "internal node splits since the tree was created",
	}, func() float64 { return float64(tree.Stats().InternalSplits) })

	// pre-create the label set so every verb scrapes as 0 before first use
	for _, c := range []string{cmdInsert, cmdRemove, cmdLookup, cmdLowerBound} {
		m.commands.WithLabelValues(c)
	}
	return m
}

func (m *Metrics) observe(command string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command).Inc()
}

func (m *Metrics) cacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) cacheMiss(enabled bool) {
	if m == nil || !enabled {
		return
	}
	m.cacheMisses.Inc()
}
