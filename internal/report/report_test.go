package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sjiang/lirssim/internal/report"
)

func TestWriteCurve(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteCurve(&buf, []report.CurvePoint{
		{CacheSize: 10, HitRate: 55.0},
		{CacheSize: 20, HitRate: 66.67},
	})
	require.NoError(t, err)
	require.Equal(t, "   10  55.0\n   20  66.7\n", buf.String())
}

func TestWriteCurveEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCurve(&buf, nil))
	require.Empty(t, buf.String())
}

func TestWriteSamples(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteSamples(&buf, []report.Sample{
		{TotalRefs: 100, Occupancy: 1.25},
		{TotalRefs: 200, Occupancy: 0.9},
	})
	require.NoError(t, err)
	require.Equal(t, " 100 1.25\n 200 0.90\n", buf.String())
}
