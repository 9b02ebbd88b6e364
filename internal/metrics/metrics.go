package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RatesCalculatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipping_rates_calculated_total",
		Help: "Total number of successful rate calculations.",
	})

	LabelsPurchasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipping_labels_purchased_total",
		Help: "Total number of shipping labels successfully purchased.",
	})

	RemoteErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_remote_errors_total",
		Help: "Total number of carrier API failures by workflow step.",
	},
		[]string{"step"},
	)

	PurchaseConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipping_purchase_conflicts_total",
		Help: "Total number of label purchases rejected because one already exists.",
	})

	ShipmentCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shipping_shipment_cache_items",
		Help: "Current number of shipments held in the tracking cache.",
	})
)
