package piece

import "testing"

// TestRotationCounts verifies every kind defines its expected number of states
func TestRotationCounts(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		want := 4
		if k == O {
			want = 1
		}
		if got := RotationCount(k); got != want {
			t.Errorf("Expected %d rotation states for %s, got %d", want, k, got)
		}
	}
}

// TestShapeOffsetsWellFormed verifies every state has four distinct cells
// inside the 4x4 bounding box
func TestShapeOffsetsWellFormed(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		for r := 0; r < RotationCount(k); r++ {
			offsets := ShapeOffsets(k, r)
			if len(offsets) != 4 {
				t.Fatalf("Expected 4 offsets for %s rotation %d, got %d", k, r, len(offsets))
			}
			seen := make(map[Offset]bool)
			for _, o := range offsets {
				if o.Row < 0 || o.Row > 3 || o.Col < 0 || o.Col > 3 {
					t.Errorf("Offset %v of %s rotation %d outside 4x4 box", o, k, r)
				}
				if seen[o] {
					t.Errorf("Duplicate offset %v in %s rotation %d", o, k, r)
				}
				seen[o] = true
			}
		}
	}
}

// TestShapeOffsetsInvalidRotation verifies out-of-range rotation panics
func TestShapeOffsetsInvalidRotation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for rotation index outside defined range")
		}
	}()
	ShapeOffsets(O, 1)
}

// TestKindColors verifies every kind has a distinct non-empty color
func TestKindColors(t *testing.T) {
	seen := make(map[Color]Kind)
	for k := Kind(0); k < KindCount; k++ {
		c := k.Color()
		if c == ColorNone {
			t.Errorf("Expected non-empty color for %s", k)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("Kinds %s and %s share color %d", prev, k, c)
		}
		seen[c] = k
	}
}

// TestKicksOKind verifies the O kind defines no kicks
func TestKicksOKind(t *testing.T) {
	if kicks := Kicks(O, 0, 1); len(kicks) != 0 {
		t.Errorf("Expected no kicks for O kind, got %v", kicks)
	}
}

// TestKicksDistinctTables verifies the I kind uses its own table
func TestKicksDistinctTables(t *testing.T) {
	iTable := Kicks(I, 0, 1)
	tTable := Kicks(T, 0, 1)
	if len(iTable) == 0 || len(tTable) == 0 {
		t.Fatal("Expected non-empty kick tables for I and T")
	}
	same := len(iTable) == len(tTable)
	if same {
		for i := range iTable {
			if iTable[i] != tTable[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Expected I kick table to differ from the J/L/S/T/Z table")
	}
}

// TestKicksInverse verifies the SRS property that the kicks for a
// transition are the negation of the reverse transition's kicks
func TestKicksInverse(t *testing.T) {
	for _, k := range []Kind{T, I} {
		for from := 0; from < 4; from++ {
			to := (from + 1) % 4
			fwd := Kicks(k, from, to)
			rev := Kicks(k, to, from)
			if len(fwd) != len(rev) {
				t.Fatalf("%s %d->%d: kick count %d != reverse %d", k, from, to, len(fwd), len(rev))
			}
			for i := range fwd {
				want := Offset{-fwd[i].Row, -fwd[i].Col}
				if rev[i] != want {
					t.Errorf("%s %d->%d kick %d: expected reverse %v, got %v", k, from, to, i, want, rev[i])
				}
			}
		}
	}
}

// TestBagCoverage verifies a seven-bag deals every kind exactly once per cycle
func TestBagCoverage(t *testing.T) {
	bag := NewBag(42)
	for cycle := 0; cycle < 3; cycle++ {
		counts := make(map[Kind]int)
		for i := 0; i < KindCount; i++ {
			counts[bag.Next()]++
		}
		for k := Kind(0); k < KindCount; k++ {
			if counts[k] != 1 {
				t.Errorf("Cycle %d: expected kind %s once, got %d", cycle, k, counts[k])
			}
		}
	}
}

// TestUniformReachable verifies every kind eventually appears
func TestUniformReachable(t *testing.T) {
	u := NewUniform(7)
	seen := make(map[Kind]bool)
	for i := 0; i < 1000 && len(seen) < KindCount; i++ {
		seen[u.Next()] = true
	}
	if len(seen) != KindCount {
		t.Errorf("Expected all %d kinds within 1000 draws, got %d", KindCount, len(seen))
	}
}
