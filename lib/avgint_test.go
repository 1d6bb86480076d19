package lib

import "testing"

func TestAverageInt64(t *testing.T) {
	av := &AverageInt64{}
	if x, y := int64(0), av.Mean(); x != y {
		t.Errorf("expected %v, got %v", x, y)
	} else if av.Variance() != 0 {
		t.Errorf("unexpected %v", av.Variance())
	} else if av.SD() != 0 {
		t.Errorf("unexpected %v", av.SD())
	}

	for i := 1; i <= 100; i++ {
		av.Add(int64(i))
	}
	if x, y := int64(1), av.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), av.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), av.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(5050), av.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := int64(50), av.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := 883.5, av.Variance(); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := 29.723727895403698, av.SD(); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}
}

func BenchmarkAvgintAdd(b *testing.B) {
	av := &AverageInt64{}
	for i := 0; i < b.N; i++ {
		av.Add(int64(i))
	}
}
