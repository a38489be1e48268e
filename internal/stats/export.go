package stats

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

const metricPrefix = "watcrack_"

// MetricFamilies returns the counters as Prometheus metric families.
func MetricFamilies(s UserStats) []*dto.MetricFamily {
	return []*dto.MetricFamily{
		counter("points_total", "Sum of all response scores.", float64(s.Points)),
		counter("words_total", "Words written across all responses.", float64(s.TotalWords)),
		counter("tests_completed_total", "Responses submitted and scored.", float64(s.CompletedTests)),
		gauge("highest_score", "Best score achieved.", float64(s.HighestScore)),
		gauge("average_score", "Mean score per completed test.", s.AverageScore()),
		gauge("badges", "Badges earned.", float64(len(s.Badges))),
	}
}

// WritePrometheus renders the counters in the Prometheus text exposition
// format, suitable for the node exporter textfile collector.
func WritePrometheus(w io.Writer, s UserStats) error {
	for _, mf := range MetricFamilies(s) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func counter(name, help string, v float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(metricPrefix + name),
		Help: proto.String(help),
		Type: dto.MetricType_COUNTER.Enum(),
		Metric: []*dto.Metric{
			{Counter: &dto.Counter{Value: proto.Float64(v)}},
		},
	}
}

func gauge(name, help string, v float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(metricPrefix + name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{
			{Gauge: &dto.Gauge{Value: proto.Float64(v)}},
		},
	}
}
