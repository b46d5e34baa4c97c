package willowgui

import "github.com/hajimehoshi/ebiten/v2"

// BackgroundKind tags which payload of a Background is meaningful.
type BackgroundKind uint8

const (
	backgroundUnset         BackgroundKind = iota // zero value; paints white
	BackgroundColor                               // solid Color
	BackgroundTexture                             // whole Texture stretched over the node
	BackgroundAtlasFrame                          // named frame of an Atlas
	BackgroundTextureMatrix                       // Texture sampled through a UV matrix
)

// Background is what a node paints over its rectangle. Build one with
// ColorBackground, TextureBackground, AtlasBackground or
// TextureMatrixBackground. The zero value paints white.
type Background struct {
	Kind    BackgroundKind
	Color   Color
	Texture *ebiten.Image
	Atlas   *Atlas
	Frame   string
	// UV maps unit quad coordinates into texture pixels for
	// BackgroundTextureMatrix. Layout matches the node world matrix.
	UV [6]float64
}

// ColorBackground returns a solid color background.
func ColorBackground(c Color) Background {
	return Background{Kind: BackgroundColor, Color: c}
}

// TextureBackground returns a background that stretches img over the node.
func TextureBackground(img *ebiten.Image) Background {
	return Background{Kind: BackgroundTexture, Texture: img}
}

// AtlasBackground returns a background drawn from a named atlas frame.
func AtlasBackground(atlas *Atlas, frame string) Background {
	return Background{Kind: BackgroundAtlasFrame, Atlas: atlas, Frame: frame}
}

// TextureMatrixBackground returns a background sampling img through uv.
func TextureMatrixBackground(img *ebiten.Image, uv [6]float64) Background {
	return Background{Kind: BackgroundTextureMatrix, Texture: img, UV: uv}
}

// IsZero reports whether b is the unset background.
func (b Background) IsZero() bool {
	return b == Background{}
}

// resolved substitutes the white default for the zero value.
func (b Background) resolved() Background {
	if b.IsZero() {
		return ColorBackground(ColorWhite)
	}
	return b
}

// Equal reports whether two backgrounds paint the same thing. Textures are
// compared by identity, atlas frames by atlas identity and frame name.
func (b Background) Equal(other Background) bool {
	b, other = b.resolved(), other.resolved()
	if b.Kind != other.Kind {
		return false
	}
	switch b.Kind {
	case BackgroundColor:
		return b.Color == other.Color
	case BackgroundTexture:
		return b.Texture == other.Texture
	case BackgroundAtlasFrame:
		return b.Atlas == other.Atlas && b.Frame == other.Frame
	case BackgroundTextureMatrix:
		return b.Texture == other.Texture && b.UV == other.UV
	}
	return false
}
