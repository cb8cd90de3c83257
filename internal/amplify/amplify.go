// Package amplify implements the data-exaggeration transform: values are
// stretched away from their mean so the strongest scores read stronger and
// the weakest read weaker on the finished chart.
package amplify

import (
	"fmt"
	"math"

	"github.com/arvidh/chartstudio/pkg/models"
)

// Amplify stretches values around their arithmetic mean by factor and
// clamps each result at zero. The returned slice has the same length and
// order as the input.
//
// factor 1.0 is the identity (modulo clamping, a no-op for non-negative
// input); factor > 1 widens the spread without moving the mean; factor 0
// collapses everything onto the mean. Clamping runs after centering, so a
// value far enough below the mean is cut off at zero and the mean of the
// output then drifts upward. That is the intended behavior, not a defect.
func Amplify(values []float64, factor float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("amplify: %w: empty value sequence has no mean", models.ErrInvalidInput)
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("amplify: %w: factor must be a finite number >= 0, got %v", models.ErrInvalidInput, factor)
	}

	sum := 0.0
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("amplify: %w: value at index %d is not a finite number", models.ErrInvalidInput, i)
		}
		sum += v
	}
	mean := sum / float64(len(values))

	amplified := make([]float64, len(values))
	for i, v := range values {
		a := mean + (v-mean)*factor
		if a < 0 {
			a = 0
		}
		amplified[i] = a
	}
	return amplified, nil
}
