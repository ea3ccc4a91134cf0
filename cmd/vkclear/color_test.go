package main

import (
	"math"
	"testing"
)

func TestFrameColor(t *testing.T) {
	const eps = 1e-5
	tests := []struct {
		frame, period int
		want          [4]float32
	}{
		{0, 240, [4]float32{1, 0.1, 0, 1}},
		{120, 240, [4]float32{0, 0.1, 1, 1}},
		{60, 240, [4]float32{0.5, 0.1, 0.5, 1}},
		{240, 240, [4]float32{1, 0.1, 0, 1}},
		{5, 0, [4]float32{1, 0.1, 0, 1}},
	}
	for _, tt := range tests {
		got := frameColor(tt.frame, tt.period).Float32()
		for i := range got {
			if math.Abs(float64(got[i]-tt.want[i])) > eps {
				t.Errorf("frameColor(%d, %d) = %v, want %v", tt.frame, tt.period, got, tt.want)
				break
			}
		}
	}
}
