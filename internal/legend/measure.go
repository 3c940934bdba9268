package legend

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	shapeOnce sync.Once
	shapeFont *font.Font
	shapeErr  error

	shapers = sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }}
)

func shapingFont() (*font.Font, error) {
	shapeOnce.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
		if err != nil {
			shapeErr = err
			return
		}
		shapeFont = face.Font
	})
	return shapeFont, shapeErr
}

// Measure returns the shaped advance of text in pixels at the given size.
func Measure(text string, size float64) (float64, error) {
	if text == "" {
		return 0, nil
	}
	f, err := shapingFont()
	if err != nil {
		return 0, err
	}
	runes := []rune(text)
	script := language.Latin
	for _, r := range runes {
		if r != ' ' {
			script = language.LookupScript(r)
			break
		}
	}

	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    script,
		Language:  language.NewLanguage("en"),
	}
	s := shapers.Get().(*shaping.HarfbuzzShaper)
	out := s.Shape(in)
	shapers.Put(s)
	return float64(out.Advance) / 64, nil
}
