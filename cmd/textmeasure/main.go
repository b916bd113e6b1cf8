// Command textmeasure measures text from the command line and prints the
// bounding dimensions.
//
// The text is taken from the positional arguments, or from stdin when none
// are given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/textmeasure"
	"github.com/gogpu/textmeasure/font"
)

func main() {
	var opts textmeasure.Options
	var fontFile string
	var mono bool
	var asJSON bool
	flag.StringVar(&opts.FontFamily, "font", "",
		"font family name; empty uses the default family")
	flag.Float64Var(&opts.FontSize, "size", textmeasure.DefaultFontSize,
		"font size in pixels per em")
	flag.StringVar(&opts.FontWeight, "weight", "normal",
		"font weight token (`normal`, `bold`, or 100..900)")
	flag.StringVar(&opts.FontStyle, "style", "normal",
		"font style (`normal` or `italic`)")
	flag.Float64Var(&opts.MaxWidth, "max-width", 0,
		"wrap width in pixels; 0 disables wrapping")
	flag.Float64Var(&opts.MaxHeight, "max-height", 0,
		"height clamp in pixels; 0 means unbounded")
	flag.Float64Var(&opts.LetterSpacing, "letter-spacing", 0,
		"extra advance per glyph in pixels")
	flag.Float64Var(&opts.LineHeight, "line-height", 0,
		"absolute line height in pixels; 0 uses the font's natural height")
	flag.Float64Var(&opts.LineHeightMultiple, "line-height-multiple", 0,
		"line height multiplier; 0 means 1.0")
	flag.IntVar(&opts.MaxLines, "max-lines", 0,
		"maximum number of lines; 0 means unlimited")
	flag.StringVar(&fontFile, "font-file", "",
		"load a TTF/OTF file into the registry and measure with it")
	flag.BoolVar(&mono, "mono", false,
		"measure on a terminal cell grid instead of shaping outlines")
	flag.BoolVar(&asJSON, "json", false,
		"print the result as a JSON object")
	flag.Parse()

	text, err := inputText(flag.Args())
	if err != nil {
		fail(err)
	}

	var engine textmeasure.Engine
	if mono {
		engine = textmeasure.NewMonoEngine()
	} else {
		ot := textmeasure.NewOpenTypeEngine()
		if fontFile != "" {
			src, err := font.NewSourceFromFile(fontFile)
			if err != nil {
				fail(err)
			}
			ot.Registry().Register(src.Name(), font.Style{}, src)
			if opts.FontFamily == "" {
				opts.FontFamily = src.Name()
			}
		}
		engine = ot
	}

	m := textmeasure.New(textmeasure.WithEngine(engine))
	res, err := m.Measure(text, opts)
	if err != nil {
		fail(err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(res); err != nil {
			fail(err)
		}
		return
	}
	fmt.Printf("width: %.2f\nheight: %.2f\nlines: %d\n", res.Width, res.Height, res.LineCount)
}

// inputText joins the positional args, or reads stdin when there are none.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
