package main

import (
	"time"

	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var taxonomySummary = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "imagenet",
		Subsystem: "browser",
		Name:      "entities",
		Help:      "Number of entities of each kind in the store",
	},
	[]string{
		"entity",
	},
)

func init() {
	prometheus.MustRegister(taxonomySummary)
}

// observe periodically polls store statistics into Prometheus gauges.
// It runs forever and wants its own goroutine.
func observe(store taxonomy.Store) {
	observeWithClock(store, clock.New())
}

func observeWithClock(store taxonomy.Store, clk clock.Clock) {
	ticker := clk.Ticker(15 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		stats, err := store.Stats()
		if err != nil {
			logrus.WithError(err).Warn("Could not collect store statistics")
			continue
		}
		taxonomySummary.With(prometheus.Labels{"entity": "synsets"}).Set(float64(stats.Synsets))
		taxonomySummary.With(prometheus.Labels{"entity": "hyponyms"}).Set(float64(stats.Hyponyms))
		taxonomySummary.With(prometheus.Labels{"entity": "images"}).Set(float64(stats.Images))
	}
}
