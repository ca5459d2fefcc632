package metrics

import "github.com/prometheus/client_golang/prometheus"

// ImportMetrics exposes counters/histograms for the patient import pipeline.
type ImportMetrics struct {
	rowsTotal       *prometheus.CounterVec
	importDuration  prometheus.Histogram
	patientsCreated prometheus.Counter
	patientsUpdated prometheus.Counter
}

func NewImportMetrics(reg prometheus.Registerer) *ImportMetrics {
	m := &ImportMetrics{
		rowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicops",
			Subsystem: "import",
			Name:      "rows_total",
			Help:      "Total spreadsheet rows processed",
		}, []string{"outcome"}),
		importDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinicops",
			Subsystem: "import",
			Name:      "duration_seconds",
			Help:      "Wall time of whole-file imports",
			Buckets:   prometheus.DefBuckets,
		}),
		patientsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinicops",
			Subsystem: "import",
			Name:      "patients_created_total",
			Help:      "Patients created by imports",
		}),
		patientsUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinicops",
			Subsystem: "import",
			Name:      "patients_updated_total",
			Help:      "Patients updated by imports",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.rowsTotal, m.importDuration, m.patientsCreated, m.patientsUpdated)
	return m
}

func (m *ImportMetrics) ObserveRow(outcome string) {
	if m == nil {
		return
	}
	m.rowsTotal.WithLabelValues(outcome).Inc()
}

func (m *ImportMetrics) ObserveImport(seconds float64, created, updated int) {
	if m == nil {
		return
	}
	m.importDuration.Observe(seconds)
	m.patientsCreated.Add(float64(created))
	m.patientsUpdated.Add(float64(updated))
}
