package layout

import "testing"

// TestSegmentLTROnly verifies plain LTR text stays in one run.
func TestSegmentLTROnly(t *testing.T) {
	segs := segment("hello world", DirectionLTR)
	if len(segs) != 1 {
		t.Fatalf("len(segs) = %d, want 1", len(segs))
	}
	if segs[0].Direction != DirectionLTR {
		t.Errorf("Direction = %v, want LTR", segs[0].Direction)
	}
	if segs[0].Text != "hello world" || segs[0].Start != 0 {
		t.Errorf("seg = %+v", segs[0])
	}
}

// TestSegmentRTLOnly verifies Hebrew text resolves to an RTL run.
func TestSegmentRTLOnly(t *testing.T) {
	segs := segment("שלום", DirectionLTR)
	if len(segs) != 1 {
		t.Fatalf("len(segs) = %d, want 1", len(segs))
	}
	if segs[0].Direction != DirectionRTL {
		t.Errorf("Direction = %v, want RTL", segs[0].Direction)
	}
}

// TestSegmentMixed verifies mixed text splits into direction runs covering
// every rune exactly once.
func TestSegmentMixed(t *testing.T) {
	text := "abc שלום def"
	segs := segment(text, DirectionLTR)
	if len(segs) < 2 {
		t.Fatalf("len(segs) = %d, want >= 2", len(segs))
	}

	sawRTL := false
	runeCount := 0
	for i, seg := range segs {
		if seg.Start != runeCount {
			t.Errorf("seg %d Start = %d, want %d", i, seg.Start, runeCount)
		}
		runeCount += len([]rune(seg.Text))
		if seg.Direction == DirectionRTL {
			sawRTL = true
		}
	}
	if !sawRTL {
		t.Error("no RTL run found")
	}
	if want := len([]rune(text)); runeCount != want {
		t.Errorf("runs cover %d runes, want %d", runeCount, want)
	}
}

// TestSegmentEmpty verifies empty text produces no runs.
func TestSegmentEmpty(t *testing.T) {
	if segs := segment("", DirectionLTR); segs != nil {
		t.Errorf("segs = %v, want nil", segs)
	}
}

// TestSegmentBaseDirection verifies neutral text follows the base
// direction.
func TestSegmentBaseDirection(t *testing.T) {
	segs := segment("1234", DirectionRTL)
	if len(segs) == 0 {
		t.Fatal("no segments")
	}
	// Digits are direction-neutral; with an RTL base the paragraph level
	// is RTL but the digit run itself stays LTR under the bidi algorithm.
	// The important property is stability, not a specific direction.
	again := segment("1234", DirectionRTL)
	if len(again) != len(segs) || again[0] != segs[0] {
		t.Errorf("segmentation not stable: %+v vs %+v", segs, again)
	}
}
