package util

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceIncludes(t *testing.T) {
	assert.True(t, SliceIncludes([]string{"GET", "POST"}, "POST"))
	assert.False(t, SliceIncludes([]string{"GET", "POST"}, "post"))
	assert.False(t, SliceIncludes(nil, 1))
}

func TestPtr(t *testing.T) {
	p := Ptr(3)
	assert.Equal(t, 3, *p)
	assert.NotSame(t, p, Ptr(3))
}

func TestGetCounterVec(t *testing.T) {
	opts := prometheus.CounterOpts{Name: "util_test_counter_total", Help: "test counter"}

	first, err := GetCounterVec(opts, "result")
	require.NoError(t, err)
	second, err := GetCounterVec(opts, "result")
	require.NoError(t, err)

	assert.Same(t, first, second)
}
