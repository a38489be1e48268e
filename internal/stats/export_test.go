package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePrometheus(t *testing.T) {
	s := UserStats{Points: 150, TotalWords: 420, CompletedTests: 2, HighestScore: 90, Badges: []string{"first-draft"}}

	var buf bytes.Buffer
	require.NoError(t, WritePrometheus(&buf, s))
	assert.Contains(t, buf.String(), "# TYPE watcrack_points_total counter")

	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(strings.NewReader(buf.String()))
	require.NoError(t, err)

	want := map[string]float64{
		"watcrack_points_total":          150,
		"watcrack_words_total":           420,
		"watcrack_tests_completed_total": 2,
		"watcrack_highest_score":         90,
		"watcrack_average_score":         75,
		"watcrack_badges":                1,
	}
	require.Len(t, mfs, len(want))
	for name, v := range want {
		mf, ok := mfs[name]
		require.True(t, ok, "missing %s", name)
		m := mf.GetMetric()[0]
		got := m.GetGauge().GetValue()
		if m.Counter != nil {
			got = m.GetCounter().GetValue()
		}
		assert.Equal(t, v, got, name)
	}
}
