package mockdirectory

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts responses served by the mock directory.
type Metrics struct {
	ResponsesTotal *prometheus.CounterVec
}

// NewMetrics registers the mock directory collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ResponsesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "playerid_mock_directory_responses_total",
			Help: "Responses served by the mock directory by route and status code",
		}, []string{"route", "status"}),
	}
}

// ObserveResponse is a no-op on a nil receiver.
func (m *Metrics) ObserveResponse(route string, status int) {
	if m == nil {
		return
	}
	m.ResponsesTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
