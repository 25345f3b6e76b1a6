package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartItemsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kolagen_cart_items_added_total",
		Help: "Products added to the sidebar cart",
	}, []string{"product"})

	OrdersPrepared = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kolagen_orders_prepared_total",
		Help: "Order form submissions by validation result",
	}, []string{"result"})

	NewsletterSignups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kolagen_newsletter_signups_total",
		Help: "Newsletter signup attempts by result",
	}, []string{"result"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kolagen_active_sessions",
		Help: "Visitor sessions currently held in memory",
	})
)
