package util

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

func SliceIncludes[T comparable](values []T, value T) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Ptr returns pointer of any value.
func Ptr[T any](t T) *T {
	return &t
}

// GetCounterVec registers a counter vector on the default registry, or returns
// the one already registered under the same description.
func GetCounterVec(opts prometheus.CounterOpts, labels ...string) (*prometheus.CounterVec, error) {
	metrics := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(metrics); err != nil {
		var registeredErr prometheus.AlreadyRegisteredError
		if ok := errors.As(err, &registeredErr); ok {
			metrics, ok := registeredErr.ExistingCollector.(*prometheus.CounterVec)
			if ok {
				return metrics, nil
			}
		}
		return nil, fmt.Errorf("register: %w %T", err, err)
	}

	return metrics, nil
}
