package layout

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textmeasure/font"
)

// TestHarfBuzzShaperBasic verifies shaping produces positive advances and
// in-range clusters.
func TestHarfBuzzShaperBasic(t *testing.T) {
	face := loadTestFace(t, 14)
	s := NewHarfBuzzShaper()

	glyphs := s.Shape("Hello", face, DirectionLTR)
	if len(glyphs) == 0 {
		t.Fatal("no glyphs")
	}

	runeCount := len([]rune("Hello"))
	var total float64
	for i, g := range glyphs {
		if g.Cluster < 0 || g.Cluster >= runeCount {
			t.Errorf("glyph %d Cluster = %d, out of range", i, g.Cluster)
		}
		total += g.Advance
	}
	if total <= 0 {
		t.Errorf("total advance = %f, want > 0", total)
	}
}

// TestHarfBuzzShaperEmpty verifies edge inputs return nil.
func TestHarfBuzzShaperEmpty(t *testing.T) {
	face := loadTestFace(t, 14)
	s := NewHarfBuzzShaper()

	if g := s.Shape("", face, DirectionLTR); g != nil {
		t.Errorf("Shape(empty) = %v, want nil", g)
	}
	if g := s.Shape("x", nil, DirectionLTR); g != nil {
		t.Errorf("Shape(nil face) = %v, want nil", g)
	}
}

// TestHarfBuzzShaperCachesFont verifies repeated shaping reuses the parsed
// font and stays deterministic.
func TestHarfBuzzShaperCachesFont(t *testing.T) {
	face := loadTestFace(t, 14)
	s := NewHarfBuzzShaper()

	first := s.Shape("cache me", face, DirectionLTR)
	for i := 0; i < 5; i++ {
		got := s.Shape("cache me", face, DirectionLTR)
		if len(got) != len(first) {
			t.Fatalf("run %d: %d glyphs, want %d", i, len(got), len(first))
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("run %d glyph %d = %+v, want %+v", i, j, got[j], first[j])
			}
		}
	}

	s.RemoveSource(face.Source())
	again := s.Shape("cache me", face, DirectionLTR)
	if len(again) != len(first) {
		t.Errorf("after RemoveSource: %d glyphs, want %d", len(again), len(first))
	}
}

// TestHarfBuzzShaperClosedSource verifies a closed source shapes to nil.
func TestHarfBuzzShaperClosedSource(t *testing.T) {
	src, err := font.NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	face := src.Face(14)
	if err := src.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s := NewHarfBuzzShaper()
	if g := s.Shape("x", face, DirectionLTR); g != nil {
		t.Errorf("Shape on closed source = %v, want nil", g)
	}
}

// TestBuiltinShaperBasic verifies the fallback shaper.
func TestBuiltinShaperBasic(t *testing.T) {
	face := loadTestFace(t, 14)
	s := &BuiltinShaper{}

	glyphs := s.Shape("abc", face, DirectionLTR)
	if len(glyphs) != 3 {
		t.Fatalf("len(glyphs) = %d, want 3", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Cluster != i {
			t.Errorf("glyph %d Cluster = %d, want %d", i, g.Cluster, i)
		}
		if g.Advance <= 0 {
			t.Errorf("glyph %d Advance = %f, want > 0", i, g.Advance)
		}
	}
}

// TestShapersAgreeOnSimpleText verifies both shapers measure plain ASCII
// within a small tolerance (the Go fonts carry little kerning for it).
func TestShapersAgreeOnSimpleText(t *testing.T) {
	face := loadTestFace(t, 14)

	sum := func(glyphs []Glyph) float64 {
		var w float64
		for _, g := range glyphs {
			w += g.Advance
		}
		return w
	}

	hb := sum(NewHarfBuzzShaper().Shape("measure", face, DirectionLTR))
	builtin := sum((&BuiltinShaper{}).Shape("measure", face, DirectionLTR))

	if diff := hb - builtin; diff < -1 || diff > 1 {
		t.Errorf("harfbuzz = %f, builtin = %f, diverge too far", hb, builtin)
	}
}

// TestSetShaper verifies the global shaper swap and reset.
func TestSetShaper(t *testing.T) {
	face := loadTestFace(t, 14)

	custom := &BuiltinShaper{}
	SetShaper(custom)
	defer SetShaper(nil)

	if GetShaper() != custom {
		t.Fatal("GetShaper() did not return the custom shaper")
	}
	if g := Shape("x", face, DirectionLTR); len(g) != 1 {
		t.Errorf("Shape through custom shaper: %d glyphs, want 1", len(g))
	}

	SetShaper(nil)
	if _, ok := GetShaper().(*HarfBuzzShaper); !ok {
		t.Errorf("GetShaper() after reset = %T, want *HarfBuzzShaper", GetShaper())
	}
}
