package core

import (
	"math"
	"testing"
)

func TestAABB_Intersect(t *testing.T) {
	box := NewAABBFromCenter(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Axis aligned hit along +Z",
			ray:       NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 4,
		},
		{
			name:      "Axis aligned hit along -X",
			ray:       NewRay(NewVec3(3, 0.5, 0.5), NewVec3(-1, 0, 0)),
			shouldHit: true,
			expectedT: 2,
		},
		{
			name:      "Diagonal hit",
			ray:       NewRay(NewVec3(-3, -3, 0), NewVec3(1, 1, 0).Normalize()),
			shouldHit: true,
			expectedT: 2 * math.Sqrt2,
		},
		{
			name:      "Parallel ray outside slab",
			ray:       NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Parallel ray on slab boundary",
			ray:       NewRay(NewVec3(0, 1, -5), NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 4,
		},
		{
			name:      "Box behind origin",
			ray:       NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Origin inside box",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Origin on boundary pointing inward",
			ray:       NewRay(NewVec3(-1, 0, 0), NewVec3(1, 0, 0)),
			shouldHit: true,
			expectedT: 0,
		},
		{
			name:      "Miss past corner",
			ray:       NewRay(NewVec3(-5, 3, 0), NewVec3(1, 0.1, 0).Normalize()),
			shouldHit: false,
		},
		{
			name:      "Zero direction",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 0)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tNear, hit := box.Intersect(tt.ray)
			if hit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v (t=%f)", tt.shouldHit, hit, tNear)
			}
			if hit && math.Abs(tNear-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, tNear)
			}
			if math.IsNaN(tNear) || math.IsInf(tNear, 0) {
				t.Errorf("Distance must be finite, got %f", tNear)
			}
		})
	}
}

func TestAABB_SizeAndCenter(t *testing.T) {
	box := NewAABBFromCenter(NewVec3(2, 3, 4), NewVec3(1, 2, 1.5))

	if got := box.Size(); got != NewVec3(2, 4, 3) {
		t.Errorf("Expected size (2,4,3), got %v", got)
	}
	if got := box.Center(); got != NewVec3(2, 3, 4) {
		t.Errorf("Expected center (2,3,4), got %v", got)
	}
	if !box.IsValid() {
		t.Error("Expected box to be valid")
	}
	if NewAABB(NewVec3(0, 0, 0), NewVec3(1, 0, 1)).IsValid() {
		t.Error("Expected flat box to be invalid")
	}
}
