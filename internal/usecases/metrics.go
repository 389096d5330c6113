package usecases

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var likesSentCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tokyo_friends_likes_sent_total",
	Help: "Total number of likes recorded",
})

var skipsRecordedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tokyo_friends_skips_recorded_total",
	Help: "Total number of skips recorded",
})

var matchesCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tokyo_friends_matches_created_total",
	Help: "Total number of matches created from reciprocal likes",
})

var blocksAppliedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tokyo_friends_blocks_applied_total",
	Help: "Total number of user blocks applied",
})

var reportsFiledCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tokyo_friends_reports_filed_total",
	Help: "Total number of reports filed, by reason",
}, []string{"reason"})

var cascadeFailuresCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tokyo_friends_block_cascade_failures_total",
	Help: "Total number of non-fatal failures during block cascades",
})

var decksAssembledCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tokyo_friends_decks_assembled_total",
	Help: "Total number of card decks assembled",
})
