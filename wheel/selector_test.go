package wheel

import (
	"errors"
	"testing"
)

func TestWeightedIndexUniformBuckets(t *testing.T) {
	weights := []float64{1, 1, 1, 1}
	cases := []struct {
		u    float64
		want int
	}{
		{0.0, 0},
		{0.24, 0},
		{0.26, 1},
		{0.49, 1},
		{0.51, 2},
		{0.99, 3},
	}
	for _, c := range cases {
		got, err := WeightedIndex(weights, c.u)
		if err != nil {
			t.Fatalf("u=%v: unexpected error %v", c.u, err)
		}
		if got != c.want {
			t.Errorf("u=%v: got index %d, want %d", c.u, got, c.want)
		}
	}
}

func TestWeightedIndexProportional(t *testing.T) {
	// Buckets: [0,1), [1,4), [4,5) over total 5
	weights := []float64{1, 3, 1}
	cases := []struct {
		u    float64
		want int
	}{
		{0.0, 0},
		{0.19, 0},
		{0.2, 1},
		{0.79, 1},
		{0.8, 2},
		{0.999, 2},
	}
	for _, c := range cases {
		got, err := WeightedIndex(weights, c.u)
		if err != nil {
			t.Fatalf("u=%v: unexpected error %v", c.u, err)
		}
		if got != c.want {
			t.Errorf("u=%v: got index %d, want %d", c.u, got, c.want)
		}
	}
}

func TestWeightedIndexDeterministic(t *testing.T) {
	weights := []float64{0.5, 2.5, 1.0, 0.1}
	first, err := WeightedIndex(weights, 0.7351)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		got, err := WeightedIndex(weights, 0.7351)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("run %d: got %d, want stable %d", i, got, first)
		}
	}
}

func TestWeightedIndexInvalidPool(t *testing.T) {
	for _, weights := range [][]float64{nil, {}, {0, 0, 0}} {
		if _, err := WeightedIndex(weights, 0.5); !errors.Is(err, ErrEmptySelection) {
			t.Errorf("weights %v: got err %v, want ErrEmptySelection", weights, err)
		}
	}
}

func TestWeightedIndexZeroWeightNeverPicked(t *testing.T) {
	weights := []float64{0, 1, 0, 1, 0}
	for _, u := range []float64{0, 0.25, 0.49, 0.5, 0.75, 0.999} {
		got, err := WeightedIndex(weights, u)
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 && got != 3 {
			t.Errorf("u=%v: picked zero-weight bucket %d", u, got)
		}
	}
}

func TestWeightedIndexClampsDraw(t *testing.T) {
	weights := []float64{1, 1}
	if got, _ := WeightedIndex(weights, -0.5); got != 0 {
		t.Errorf("u below range: got %d, want 0", got)
	}
	if got, _ := WeightedIndex(weights, 1.5); got != 1 {
		t.Errorf("u above range: got %d, want 1", got)
	}
}
