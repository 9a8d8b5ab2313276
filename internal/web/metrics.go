package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ratingsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pintlog_ratings_created_total",
	Help: "Number of pint ratings submitted.",
})
