package calc

import (
	"math"
	"math/rand"
	"testing"
)

func TestPowMatchesMath(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		a := math.Pow(10, rng.Float64()*80-20)
		b := rng.Float64()*40 - 20
		want := math.Pow(a, b)
		if want < 1e-300 || math.IsInf(want, 0) {
			continue
		}
		got, err := pow(a, b)
		if err != nil {
			t.Fatalf("pow(%g, %g) gave error %v", a, b, err)
		}
		if math.Abs(got-want) > 1e-12*want {
			t.Errorf("pow(%g, %g): want %g, got %g", a, b, want, got)
		}
	}
}

func TestPowNearMax(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"two", 2, 1023.5},
		{"ten", 10, 308.25},
		{"hundred", 100, 154.1},
		{"odd", 2.68e36, 8.458},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want := math.Pow(c.a, c.b)
			got, err := pow(c.a, c.b)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-want) > 1e-12*want {
				t.Errorf("pow(%g, %g): want %g, got %g", c.a, c.b, want, got)
			}
		})
	}
}
