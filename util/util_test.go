package util

import (
	"testing"

	"github.com/fogleman/ease"
)

func TestGenerateLutIsSymmetric(t *testing.T) {
	for _, length := range []int{2, 7, 10, 33} {
		lut := GenerateLut(length, ease.InOutQuad)
		if len(lut) != length {
			t.Fatalf("len = %d, want %d", len(lut), length)
		}
		if lut[0] != 0 {
			t.Errorf("length %d: lut[0] = %v, want 0", length, lut[0])
		}
		for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
			if lut[i] != lut[j] {
				t.Errorf("length %d: lut[%d] = %v, lut[%d] = %v", length, i, lut[i], j, lut[j])
			}
		}
	}
}

func TestGenerateLutOddPeak(t *testing.T) {
	lut := GenerateLut(9, ease.Linear)
	if lut[4] != 1 {
		t.Errorf("peak = %v, want 1", lut[4])
	}
	for i := 1; i <= 4; i++ {
		if lut[i] <= lut[i-1] {
			t.Errorf("lut not rising at %d: %v", i, lut)
		}
	}
}

func TestGenerateLutTiny(t *testing.T) {
	if lut := GenerateLut(0, ease.Linear); len(lut) != 0 {
		t.Errorf("empty lut = %v", lut)
	}
	if lut := GenerateLut(-3, ease.Linear); lut != nil {
		t.Errorf("negative lut = %v", lut)
	}
	if lut := GenerateLut(1, ease.Linear); len(lut) != 1 || lut[0] != 1 {
		t.Errorf("single lut = %v", lut)
	}
}
