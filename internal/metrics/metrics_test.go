package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"fast-delivery-orders/internal/metrics"
)

func TestRegister_ReturnsExistingOnDuplicate(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	first, err := metrics.Register(reg, "orders_created_total", metrics.NewOrdersCreatedTotal())
	require.NoError(t, err)
	first.Inc()

	second, err := metrics.Register(reg, "orders_created_total", metrics.NewOrdersCreatedTotal())
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, float64(1), testutil.ToFloat64(second))
}

func TestRegister_VecByLabel(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	vec, err := metrics.Register(reg, "relay_records_total", metrics.NewRelayRecordsTotal())
	require.NoError(t, err)

	vec.WithLabelValues("stored").Inc()
	vec.WithLabelValues("stored").Inc()
	vec.WithLabelValues("skipped").Inc()

	require.Equal(t, float64(2), testutil.ToFloat64(vec.WithLabelValues("stored")))
	require.Equal(t, float64(1), testutil.ToFloat64(vec.WithLabelValues("skipped")))
}

type errRegisterer struct{ err error }

func (e errRegisterer) Register(prometheus.Collector) error  { return e.err }
func (e errRegisterer) MustRegister(...prometheus.Collector) {}
func (e errRegisterer) Unregister(prometheus.Collector) bool { return false }

func TestRegister_OtherError(t *testing.T) {
	t.Parallel()

	_, err := metrics.Register(errRegisterer{err: errors.New("boom")}, "orders_delivered_total", metrics.NewOrdersDeliveredTotal())
	require.Error(t, err)
	require.Contains(t, err.Error(), "register orders_delivered_total")
}
