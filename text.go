package willowgui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LoadFont parses TrueType or OpenType data into a face source usable as
// Props.Font.
func LoadFont(ttfData []byte) (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("willowgui: failed to parse font data: %w", err)
	}
	return source, nil
}

// MeasureText returns the size of a Label or Button's text in page units,
// at the font size it is drawn with. Returns zero without a font or text.
func (n *Node) MeasureText() (width, height float64) {
	a := n.labelAppearance()
	if a.Font == nil || a.Text == "" {
		return 0, 0
	}
	face := &text.GoTextFace{Source: a.Font, Size: a.FontSize}
	m := face.Metrics()
	return text.Measure(a.Text, face, m.HAscent+m.HDescent+m.HLineGap)
}
