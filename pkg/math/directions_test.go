package math

import "testing"

func TestDir8NormUnitLength(t *testing.T) {
	for i, d := range Vec2Dir8Norm() {
		if l := d.Length(); abs(l-1) > 1e-6 {
			t.Errorf("Vec2Dir8Norm()[%d] length = %v, want 1", i, l)
		}
	}
	for i, d := range Vec3Dir8Norm() {
		if l := d.Length(); abs(l-1) > 1e-6 {
			t.Errorf("Vec3Dir8Norm()[%d] length = %v, want 1", i, l)
		}
	}
}

func TestDir16Spacing(t *testing.T) {
	dirs2 := Vec2Dir16()
	dirs3 := Vec3Dir16()
	for i := range dirs2 {
		if l := dirs2[i].Length(); abs(l-1) > 1e-6 {
			t.Errorf("Vec2Dir16()[%d] length = %v, want 1", i, l)
		}
		// Neighbours are 22.5° apart, so their dot is cos(22.5°).
		next := dirs2[(i+1)%len(dirs2)]
		if dot := dirs2[i].Dot(next); abs(dot-cos22) > 1e-6 {
			t.Errorf("Vec2Dir16 %d->%d dot = %v, want %v", i, i+1, dot, cos22)
		}
		if dirs3[i].XZ() != dirs2[i] {
			t.Errorf("Vec3Dir16()[%d].XZ() = %v, want %v", i, dirs3[i].XZ(), dirs2[i])
		}
	}
}

func TestCardinalIsSubsetOfDir8(t *testing.T) {
	card := Vec3DirCardinal()
	dir8 := Vec3Dir8()
	for i, c := range card {
		if dir8[i*2] != c {
			t.Errorf("Vec3Dir8()[%d] = %v, want %v", i*2, dir8[i*2], c)
		}
	}
	card2 := Vec2DirCardinal()
	dir82 := Vec2Dir8()
	for i, c := range card2 {
		if dir82[i*2] != c {
			t.Errorf("Vec2Dir8()[%d] = %v, want %v", i*2, dir82[i*2], c)
		}
	}
}

func TestTablesAreCopies(t *testing.T) {
	d := Vec3Dir8()
	d[0] = Vec3{}
	if Vec3Dir8()[0] != Vec3Right {
		t.Error("mutating a returned table leaked into the package")
	}
}
