package layout

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textmeasure/font"
)

// loadTestFace creates a face from the embedded Go font.
func loadTestFace(t *testing.T, size float64) font.Face {
	t.Helper()
	src, err := font.NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	t.Cleanup(func() {
		if err := src.Close(); err != nil {
			t.Errorf("failed to close font source: %v", err)
		}
	})
	return src.Face(size)
}

// TestLayoutSingleLine verifies unwrapped text stays on one line.
func TestLayoutSingleLine(t *testing.T) {
	face := loadTestFace(t, 14)

	l := LayoutText("Hello world", face, Options{})
	if len(l.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(l.Lines))
	}
	if l.Lines[0].Text != "Hello world" {
		t.Errorf("line text = %q", l.Lines[0].Text)
	}
	if l.Width <= 0 {
		t.Errorf("Width = %f, want > 0", l.Width)
	}
	if l.Height <= 0 {
		t.Errorf("Height = %f, want > 0", l.Height)
	}
}

// TestLayoutEmptyText verifies empty text still occupies one line.
func TestLayoutEmptyText(t *testing.T) {
	face := loadTestFace(t, 14)

	l := LayoutText("", face, Options{})
	if len(l.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(l.Lines))
	}
	if l.Width != 0 {
		t.Errorf("Width = %f, want 0", l.Width)
	}
	if l.Height <= 0 {
		t.Errorf("Height = %f, want one line height", l.Height)
	}
}

// TestLayoutWrap verifies greedy wrapping produces bounded lines.
func TestLayoutWrap(t *testing.T) {
	face := loadTestFace(t, 14)

	l := LayoutText("Hello world", face, Options{MaxWidth: 60})
	if len(l.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(l.Lines))
	}
	if l.Lines[0].Text != "Hello " && l.Lines[0].Text != "Hello" {
		t.Errorf("first line = %q, want the first word", l.Lines[0].Text)
	}
	if strings.TrimSpace(l.Lines[1].Text) != "world" {
		t.Errorf("second line = %q, want world", l.Lines[1].Text)
	}
	for i, line := range l.Lines {
		if line.Width > 60 {
			t.Errorf("line %d Width = %f, want <= 60", i, line.Width)
		}
	}
}

// TestLayoutWrapMonotonic verifies line counts never shrink as the width
// tightens.
func TestLayoutWrapMonotonic(t *testing.T) {
	face := loadTestFace(t, 14)
	text := "The quick brown fox jumps over the lazy dog"

	prev := 0
	for _, w := range []float64{500, 250, 120, 70, 40, 25} {
		l := LayoutText(text, face, Options{MaxWidth: w})
		if len(l.Lines) < prev {
			t.Errorf("maxWidth=%f: %d lines, want >= %d", w, len(l.Lines), prev)
		}
		if l.Width > w {
			t.Errorf("maxWidth=%f: Width = %f exceeds bound", w, l.Width)
		}
		prev = len(l.Lines)
	}
}

// TestLayoutHardBreaks verifies paragraph splitting.
func TestLayoutHardBreaks(t *testing.T) {
	face := loadTestFace(t, 14)

	tests := []struct {
		name      string
		text      string
		wantLines int
	}{
		{"lf", "one\ntwo", 2},
		{"crlf", "one\r\ntwo", 2},
		{"bare cr", "one\rtwo", 2},
		{"blank line", "one\n\ntwo", 3},
		{"trailing", "one\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutText(tt.text, face, Options{})
			if len(l.Lines) != tt.wantLines {
				t.Errorf("len(Lines) = %d, want %d", len(l.Lines), tt.wantLines)
			}
		})
	}
}

// TestLayoutLineOffsets verifies byte offsets index the original text.
func TestLayoutLineOffsets(t *testing.T) {
	face := loadTestFace(t, 14)
	text := "alpha\nbeta gamma"

	l := LayoutText(text, face, Options{MaxWidth: 45})
	for i, line := range l.Lines {
		if line.Start > line.End || line.End > len(text) {
			t.Fatalf("line %d: bad range [%d, %d)", i, line.Start, line.End)
		}
		if got := text[line.Start:line.End]; got != line.Text {
			t.Errorf("line %d: text %q != slice %q", i, line.Text, got)
		}
	}
}

// TestLayoutCJKWrapsAnywhere verifies ideographs break without spaces.
func TestLayoutCJKWrapsAnywhere(t *testing.T) {
	face := loadTestFace(t, 14)

	// Go Regular lacks CJK glyphs, but break analysis is glyph-independent
	// and .notdef advances still accumulate.
	l := LayoutText("漢字漢字漢字漢字", face, Options{MaxWidth: 30})
	if len(l.Lines) < 2 {
		t.Errorf("len(Lines) = %d, want >= 2", len(l.Lines))
	}
}

// TestLayoutLongWordFallsBackToChar verifies WrapWordChar splits words
// longer than the line.
func TestLayoutLongWordFallsBackToChar(t *testing.T) {
	face := loadTestFace(t, 14)

	l := LayoutText("unbreakablesupercalifragilistic", face, Options{MaxWidth: 50})
	if len(l.Lines) < 2 {
		t.Fatalf("len(Lines) = %d, want >= 2", len(l.Lines))
	}
	for i, line := range l.Lines {
		if line.Width > 50 {
			t.Errorf("line %d Width = %f, want <= 50", i, line.Width)
		}
	}
}

// TestLayoutWrapWordOverflows verifies WrapWord lets long words overflow.
func TestLayoutWrapWordOverflows(t *testing.T) {
	face := loadTestFace(t, 14)

	l := LayoutText("unbreakablesupercalifragilistic", face, Options{MaxWidth: 50, Wrap: WrapWord})
	if len(l.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(l.Lines))
	}
	if l.Width <= 50 {
		t.Errorf("Width = %f, want > 50 (overflow)", l.Width)
	}
}

// TestLayoutWrapNone verifies wrapping can be disabled.
func TestLayoutWrapNone(t *testing.T) {
	face := loadTestFace(t, 14)

	l := LayoutText("some text that is fairly long", face, Options{MaxWidth: 30, Wrap: WrapNone})
	if len(l.Lines) != 1 {
		t.Errorf("len(Lines) = %d, want 1", len(l.Lines))
	}
}

// TestLayoutMaxLines verifies truncation.
func TestLayoutMaxLines(t *testing.T) {
	face := loadTestFace(t, 14)

	l := LayoutText("a\nb\nc\nd", face, Options{MaxLines: 2})
	if len(l.Lines) != 2 {
		t.Errorf("len(Lines) = %d, want 2", len(l.Lines))
	}
	if !l.Truncated {
		t.Error("Truncated = false, want true")
	}

	l = LayoutText("a\nb", face, Options{MaxLines: 5})
	if l.Truncated {
		t.Error("Truncated = true for untruncated layout")
	}
}

// TestLayoutLetterSpacing verifies spacing widens lines and negative
// spacing narrows them.
func TestLayoutLetterSpacing(t *testing.T) {
	face := loadTestFace(t, 14)

	plain := LayoutText("spacing", face, Options{})
	wide := LayoutText("spacing", face, Options{LetterSpacing: 2})
	tight := LayoutText("spacing", face, Options{LetterSpacing: -0.5})

	if wide.Width <= plain.Width {
		t.Errorf("wide Width = %f, want > %f", wide.Width, plain.Width)
	}
	if tight.Width >= plain.Width {
		t.Errorf("tight Width = %f, want < %f", tight.Width, plain.Width)
	}
}

// TestLayoutLineHeightOptions verifies absolute and multiplied heights.
func TestLayoutLineHeightOptions(t *testing.T) {
	face := loadTestFace(t, 14)

	natural := LayoutText("a\nb", face, Options{})
	absolute := LayoutText("a\nb", face, Options{LineHeight: 20})
	if absolute.Height != 40 {
		t.Errorf("absolute Height = %f, want 40", absolute.Height)
	}

	scaled := LayoutText("a\nb", face, Options{LineHeightMultiple: 1.5})
	want := natural.Height * 1.5
	if diff := scaled.Height - want; diff < -0.01 || diff > 0.01 {
		t.Errorf("scaled Height = %f, want %f", scaled.Height, want)
	}

	both := LayoutText("a\nb", face, Options{LineHeight: 10, LineHeightMultiple: 2})
	if both.Height != 40 {
		t.Errorf("combined Height = %f, want 40", both.Height)
	}
}

// TestLayoutTrailingSpaceWidth verifies trailing whitespace does not count
// toward line width.
func TestLayoutTrailingSpaceWidth(t *testing.T) {
	face := loadTestFace(t, 14)

	bare := LayoutText("word", face, Options{})
	padded := LayoutText("word   ", face, Options{})
	if bare.Width != padded.Width {
		t.Errorf("padded Width = %f, want %f", padded.Width, bare.Width)
	}
}

// TestLayoutNilFace verifies a nil face yields an empty layout.
func TestLayoutNilFace(t *testing.T) {
	l := LayoutText("text", nil, Options{})
	if len(l.Lines) != 0 || l.Width != 0 || l.Height != 0 {
		t.Errorf("layout = %+v, want empty", l)
	}
}

// TestAdvanceMatchesLayout verifies Advance agrees with a single-line
// layout.
func TestAdvanceMatchesLayout(t *testing.T) {
	face := loadTestFace(t, 14)

	adv := Advance("consistency", face)
	l := LayoutText("consistency", face, Options{})
	if diff := adv - l.Width; diff < -0.01 || diff > 0.01 {
		t.Errorf("Advance = %f, layout Width = %f", adv, l.Width)
	}
}
