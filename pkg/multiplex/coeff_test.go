package multiplex

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSplitCoefficientsReconstructs(t *testing.T) {
	tests := []struct {
		name string
		c    []float64
	}{
		{"pair", []float64{1.0, 3.0}},
		{"quad", []float64{0.5, -0.25, 1.5, 2.0}},
		{"zeros", []float64{0, 0, 0, 0}},
		{"pi fractions", []float64{math.Pi, math.Pi / 2, -math.Pi / 4, 3 * math.Pi / 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, diff := SplitCoefficients(tt.c)
			m := len(tt.c) / 2
			if len(sum) != m || len(diff) != m {
				t.Fatalf("half lengths: got %d, %d, want %d", len(sum), len(diff), m)
			}
			for k := 0; k < m; k++ {
				if got := sum[k] + diff[k]; math.Abs(got-tt.c[k]) > 1e-12 {
					t.Errorf("sum[%d]+diff[%d] = %g, want %g", k, k, got, tt.c[k])
				}
				if got := sum[k] - diff[k]; math.Abs(got-tt.c[k+m]) > 1e-12 {
					t.Errorf("sum[%d]-diff[%d] = %g, want %g", k, k, got, tt.c[k+m])
				}
			}
		})
	}
}

func TestSplitCoefficientsPropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("halves reconstruct the original vector", prop.ForAll(
		func(c []float64) bool {
			sum, diff := SplitCoefficients(c)
			m := len(c) / 2
			for k := 0; k < m; k++ {
				if math.Abs(sum[k]+diff[k]-c[k]) > 1e-12 {
					return false
				}
				if math.Abs(sum[k]-diff[k]-c[k+m]) > 1e-12 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.Float64Range(-2*math.Pi, 2*math.Pi)),
	))

	properties.TestingRun(t)
}

func TestPadCoefficients(t *testing.T) {
	c := []float64{1, 2, 3}
	padded := PadCoefficients(c, 3)
	if len(padded) != 8 {
		t.Fatalf("padded length: got %d, want 8", len(padded))
	}
	for i, want := range []float64{1, 2, 3, 0, 0, 0, 0, 0} {
		if padded[i] != want {
			t.Errorf("padded[%d] = %g, want %g", i, padded[i], want)
		}
	}

	// Input must not be mutated or aliased
	padded[0] = 99
	if c[0] != 1 {
		t.Errorf("PadCoefficients aliased its input")
	}

	if got := PadCoefficients(nil, 0); len(got) != 1 || got[0] != 0 {
		t.Errorf("empty input should pad to a single zero, got %v", got)
	}
}
