// Package metrics expone los contadores Prometheus del motor de inventario.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del libro de inventario. Se registran en el registry global;
// el router los sirve en /metrics vía promhttp.
var (
	AdjustmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medstock",
		Subsystem: "inventory",
		Name:      "adjustments_total",
		Help:      "Ajustes de cantidad aplicados, por dirección (restock|usage).",
	}, []string{"direction"})

	InsufficientStockTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "medstock",
		Subsystem: "inventory",
		Name:      "insufficient_stock_total",
		Help:      "Ajustes rechazados porque dejarían la cantidad en negativo.",
	})

	RecordsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "medstock",
		Subsystem: "inventory",
		Name:      "records_created_total",
		Help:      "Registros de inventario creados.",
	})
)
