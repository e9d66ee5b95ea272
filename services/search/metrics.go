package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	offersServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelagent_offers_served_total",
		Help: "Offers returned by search endpoints, by domain and source",
	}, []string{"domain", "source"})
	searchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelagent_search_failures_total",
		Help: "Searches that ended in an error, by domain and error kind",
	}, []string{"domain", "kind"})
)
