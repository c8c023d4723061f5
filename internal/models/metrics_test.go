package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSample_Validate(t *testing.T) {
	assert.NoError(t, MetricsSample{FCP: 1200, LCP: 2000, FID: 50, CLS: 0.05, TTFB: 400}.Validate())
	assert.NoError(t, MetricsSample{}.Validate())

	tests := []struct {
		name   string
		sample MetricsSample
		field  string
	}{
		{"negative fcp", MetricsSample{FCP: -1}, "fcp"},
		{"nan lcp", MetricsSample{LCP: math.NaN()}, "lcp"},
		{"inf fid", MetricsSample{FID: math.Inf(1)}, "fid"},
		{"negative cls", MetricsSample{CLS: -0.1}, "cls"},
		{"negative inf ttfb", MetricsSample{TTFB: math.Inf(-1)}, "ttfb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sample.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSample))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestVitalsBeacon_FlattenedJSON(t *testing.T) {
	var b VitalsBeacon
	require.NoError(t, json.Unmarshal([]byte(`{"page":"/p","fcp":1,"lcp":2,"fid":3,"cls":0.4,"ttfb":5}`), &b))

	assert.Equal(t, "/p", b.Page)
	assert.Equal(t, MetricsSample{FCP: 1, LCP: 2, FID: 3, CLS: 0.4, TTFB: 5}, b.MetricsSample)
}
