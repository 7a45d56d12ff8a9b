package metrics

import (
	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hyperacing"

type Metrics struct {
	betsPlaced    prometheus.Counter
	pointsStaked  prometheus.Counter
	betsRejected  *prometheus.CounterVec
	oddsServed    *prometheus.CounterVec
	oddsPublished prometheus.Counter
	feedFetches   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		betsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bets_placed_total",
			Help:      "Bets accepted by the ledger.",
		}),
		pointsStaked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_staked_total",
			Help:      "Points debited for accepted bets.",
		}),
		betsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bets_rejected_total",
			Help:      "Bets rejected by the ledger, by reason.",
		}, []string{"reason"}),
		oddsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "odds_served_total",
			Help:      "Odds tables served, by source.",
		}, []string{"source"}),
		oddsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "odds_published_total",
			Help:      "Odds tables written to the store.",
		}),
		feedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "odds_feed_fetches_total",
			Help:      "Odds feed polls, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.betsPlaced, m.pointsStaked, m.betsRejected, m.oddsServed, m.oddsPublished, m.feedFetches)
	return m
}

func (m *Metrics) BetPlaced(stake int64) {
	m.betsPlaced.Inc()
	m.pointsStaked.Add(float64(stake))
}

func (m *Metrics) BetRejected(reason string) {
	m.betsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) OddsServed(source domain.OddsSource) {
	m.oddsServed.WithLabelValues(string(source)).Inc()
}

func (m *Metrics) OddsPublished() {
	m.oddsPublished.Inc()
}

func (m *Metrics) FeedFetched(result string) {
	m.feedFetches.WithLabelValues(result).Inc()
}
