package willowgui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion is a named frame rectangle on one atlas page.
type TextureRegion struct {
	Page          uint16
	X, Y          uint16
	Width, Height uint16
	// Rotated frames are stored 90 degrees clockwise, so the stored
	// rectangle is Height wide and Width tall.
	Rotated bool
}

// Atlas holds one or more atlas page images and a map of named regions.
// Frames are used as node backgrounds through AtlasBackground.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// Region returns the TextureRegion for the given name.
// If the name doesn't exist, it logs a warning and returns a 1x1 magenta
// placeholder region on page index magentaPlaceholderPage.
func (a *Atlas) Region(name string) TextureRegion {
	if r, ok := a.regions[name]; ok {
		return r
	}
	Logger().Warn("atlas region not found, using magenta placeholder", "region", name)
	return magentaRegion()
}

// HasRegion reports whether the atlas contains a region with the given name.
func (a *Atlas) HasRegion(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Frame returns the page image holding the named region and the matrix that
// maps unit quad coordinates (u, v in [0, 1], v down) to page pixels. Frames
// stored rotated are turned back upright by the matrix. A missing region or
// page yields the magenta placeholder.
func (a *Atlas) Frame(name string) (*ebiten.Image, [6]float64) {
	r := a.Region(name)
	if r.Page == magentaPlaceholderPage || int(r.Page) >= len(a.Pages) || a.Pages[r.Page] == nil {
		return ensureMagentaImage(), [6]float64{1, 0, 0, 1, 0, 0}
	}
	x, y := float64(r.X), float64(r.Y)
	w, h := float64(r.Width), float64(r.Height)
	if r.Rotated {
		// Stored 90 degrees clockwise: the sprite's top edge runs down the
		// region's right edge.
		return a.Pages[r.Page], [6]float64{0, w, -h, 0, x + h, y}
	}
	return a.Pages[r.Page], [6]float64{w, 0, 0, h, x, y}
}

// FrameImage returns the named region as a sub-image of its page. Rotated
// regions are returned as stored.
func (a *Atlas) FrameImage(name string) *ebiten.Image {
	r := a.Region(name)
	if r.Page == magentaPlaceholderPage || int(r.Page) >= len(a.Pages) || a.Pages[r.Page] == nil {
		return ensureMagentaImage()
	}
	w, h := int(r.Width), int(r.Height)
	if r.Rotated {
		w, h = h, w
	}
	rect := image.Rect(int(r.X), int(r.Y), int(r.X)+w, int(r.Y)+h)
	return a.Pages[r.Page].SubImage(rect).(*ebiten.Image)
}

// magenta placeholder singleton (no sync.Once; willowgui is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// magentaPlaceholderPage is a sentinel page index used for magenta placeholders.
// It's high enough to never collide with real atlas pages.
const magentaPlaceholderPage = 0xFFFF

func magentaRegion() TextureRegion {
	return TextureRegion{Page: magentaPlaceholderPage, Width: 1, Height: 1}
}

// atlasFrame is one TexturePacker frame entry. Trim metadata is ignored;
// frames are drawn at the node's shape.
type atlasFrame struct {
	Frame struct {
		X, Y, W, H int
	} `json:"frame"`
	Rotated bool `json:"rotated"`
}

// LoadAtlas parses TexturePacker JSON and associates the given page images.
// Both the single-page hash format ("frames") and the multi-page array format
// ("textures", one entry per page) are accepted.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var doc struct {
		Frames   map[string]atlasFrame `json:"frames"`
		Textures []struct {
			Frames map[string]atlasFrame `json:"frames"`
		} `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("willowgui: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{Pages: pages, regions: make(map[string]TextureRegion)}
	switch {
	case doc.Textures != nil:
		for i, tex := range doc.Textures {
			atlas.addFrames(tex.Frames, uint16(i))
		}
	case doc.Frames != nil:
		atlas.addFrames(doc.Frames, 0)
	default:
		return nil, fmt.Errorf("willowgui: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

func (a *Atlas) addFrames(frames map[string]atlasFrame, page uint16) {
	for name, f := range frames {
		a.regions[name] = TextureRegion{
			Page:    page,
			X:       uint16(f.Frame.X),
			Y:       uint16(f.Frame.Y),
			Width:   uint16(f.Frame.W),
			Height:  uint16(f.Frame.H),
			Rotated: f.Rotated,
		}
	}
}
