package willowgui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Appearance is everything a Renderer needs to draw one node, resolved from
// its kind and current state.
type Appearance struct {
	Background  Background
	Transparent bool

	// FillX and FillY are the drawn fraction of the rectangle. Rows fill
	// from the left, columns from the bottom.
	FillX float64
	FillY float64

	// Offset shifts the drawn quad in page units without affecting bounds.
	Offset Vec2

	// Text, for Label and Button.
	Text         string
	Font         *text.GoTextFaceSource
	FontSize     float64 // page units
	FontColor    Color
	TextAlign    TextAlign
	TextBaseline TextBaseline
	Border       float64
	BorderColor  Color
}

// Renderer draws nodes. Clip rectangles are in device pixels and nest.
type Renderer interface {
	DrawNode(n *Node, a Appearance)
	PushClip(r Rect)
	PopClip()
}

// render draws n and, unless n is hidden or occluded, its subtree.
func (n *Node) render(r Renderer) {
	if n.props.Hidden || !n.visible || !n.transformValid {
		return
	}
	n.w.prepare(n)
	r.DrawNode(n, n.w.appearance(n))
	clip, ok := n.w.clipRect(n)
	if ok {
		r.PushClip(clip)
	}
	for _, c := range n.children {
		c.render(r)
	}
	if ok {
		r.PopClip()
	}
}

// --- Ebiten renderer ---

// White pixel singleton (no sync.Once; willowgui is single-threaded).
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// EbitenRenderer draws nodes as textured quads onto an ebiten image and
// implements clipping with sub-images.
type EbitenRenderer struct {
	target     *ebiten.Image
	clips      []*ebiten.Image
	pixelRatio float64
	vertices   [4]ebiten.Vertex
	stats      debugStats
}

// NewEbitenRenderer creates a renderer that maps page units to pixelRatio
// device pixels.
func NewEbitenRenderer(pixelRatio float64) *EbitenRenderer {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &EbitenRenderer{pixelRatio: pixelRatio}
}

// Begin starts a frame on target.
func (r *EbitenRenderer) Begin(target *ebiten.Image) {
	r.reset(target)
}

func (r *EbitenRenderer) reset(target *ebiten.Image) {
	r.target = target
	clear(r.clips)
	r.clips = r.clips[:0]
	r.stats = debugStats{}
}

func (r *EbitenRenderer) dst() *ebiten.Image {
	if len(r.clips) > 0 {
		return r.clips[len(r.clips)-1]
	}
	return r.target
}

// PushClip restricts drawing to rect intersected with the current clip.
func (r *EbitenRenderer) PushClip(rect Rect) {
	cur := r.dst()
	sub := cur.SubImage(image.Rect(
		int(math.Floor(rect.X)),
		int(math.Floor(rect.Y)),
		int(math.Ceil(rect.X+rect.Width)),
		int(math.Ceil(rect.Y+rect.Height)),
	)).(*ebiten.Image)
	r.clips = append(r.clips, sub)
	r.stats.clipCount++
}

// PopClip restores the previous clip.
func (r *EbitenRenderer) PopClip() {
	if len(r.clips) == 0 {
		return
	}
	r.clips[len(r.clips)-1] = nil
	r.clips = r.clips[:len(r.clips)-1]
}

// DrawNode draws n's background quad and text.
func (r *EbitenRenderer) DrawNode(n *Node, a Appearance) {
	start := time.Now()
	defer func() { r.stats.drawTime += time.Since(start) }()
	r.stats.nodeCount++

	geo := r.pageGeoM(n, a.Offset)
	w, h := n.Size()
	r.drawBackground(geo, w, h, a)
	if a.Text != "" && a.Font != nil {
		r.drawText(geo, w, h, a)
	}
}

// pageGeoM maps the node's rectangle space to device pixels.
func (r *EbitenRenderer) pageGeoM(n *Node, offset Vec2) ebiten.GeoM {
	pm := n.PageMatrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, pm[0])
	g.SetElement(0, 1, pm[2])
	g.SetElement(0, 2, pm[4])
	g.SetElement(1, 0, pm[1])
	g.SetElement(1, 1, pm[3])
	g.SetElement(1, 2, pm[5])
	g.Translate(offset.X, offset.Y)
	g.Scale(r.pixelRatio, r.pixelRatio)
	return g
}

func (r *EbitenRenderer) drawBackground(geo ebiten.GeoM, w, h float64, a Appearance) {
	bg := a.Background
	cr, cg, cb, ca := float32(1), float32(1), float32(1), float32(1)
	if bg.Kind == BackgroundColor {
		if a.Transparent && bg.Color.A == 0 {
			return
		}
		cr, cg, cb = float32(bg.Color.R), float32(bg.Color.G), float32(bg.Color.B)
		if a.Transparent {
			ca = float32(bg.Color.A)
		}
	}

	src, srcAt := r.source(bg)
	if src == nil {
		return
	}

	fx, fy := clamp01(a.FillX), clamp01(a.FillY)
	// Fill rectangle in unit coordinates: rows grow from the left, columns
	// from the bottom.
	u0, u1 := 0.0, fx
	v0, v1 := 1-fy, 1.0
	corners := [4][2]float64{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
	for i, c := range corners {
		dx, dy := geo.Apply(c[0]*w, c[1]*h)
		sx, sy := srcAt(c[0], c[1])
		r.vertices[i] = ebiten.Vertex{
			DstX: float32(dx), DstY: float32(dy),
			SrcX: float32(sx), SrcY: float32(sy),
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	r.dst().DrawTriangles(r.vertices[:], quadIndices, src, &ebiten.DrawTrianglesOptions{})
}

// source resolves a background to an image and a mapping from unit quad
// coordinates to source pixels.
func (r *EbitenRenderer) source(bg Background) (*ebiten.Image, func(u, v float64) (float64, float64)) {
	switch bg.Kind {
	case BackgroundTexture:
		return imageSource(bg.Texture)
	case BackgroundAtlasFrame:
		if bg.Atlas == nil {
			return imageSource(ensureMagentaImage())
		}
		page, uv := bg.Atlas.Frame(bg.Frame)
		return page, func(u, v float64) (float64, float64) {
			return transformPoint(uv, u, v)
		}
	case BackgroundTextureMatrix:
		if bg.Texture == nil {
			return nil, nil
		}
		uv := bg.UV
		return bg.Texture, func(u, v float64) (float64, float64) {
			return transformPoint(uv, u, v)
		}
	}
	white := ensureWhitePixel()
	return white, func(float64, float64) (float64, float64) { return 0.5, 0.5 }
}

func imageSource(img *ebiten.Image) (*ebiten.Image, func(u, v float64) (float64, float64)) {
	if img == nil {
		return nil, nil
	}
	b := img.Bounds()
	x0, y0 := float64(b.Min.X), float64(b.Min.Y)
	w, h := float64(b.Dx()), float64(b.Dy())
	return img, func(u, v float64) (float64, float64) {
		return x0 + u*w, y0 + v*h
	}
}

// borderOffsets are the directions an outline is stamped in.
var borderOffsets = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (r *EbitenRenderer) drawText(geo ebiten.GeoM, w, h float64, a Appearance) {
	face := &text.GoTextFace{Source: a.Font, Size: a.FontSize}

	var x, y float64
	op := &text.DrawOptions{}
	switch a.TextAlign {
	case TextAlignLeft:
		op.PrimaryAlign = text.AlignStart
	case TextAlignRight:
		x = w
		op.PrimaryAlign = text.AlignEnd
	default:
		x = w / 2
		op.PrimaryAlign = text.AlignCenter
	}
	switch a.TextBaseline {
	case TextBaselineTop:
		op.SecondaryAlign = text.AlignStart
	case TextBaselineBottom:
		y = h
		op.SecondaryAlign = text.AlignEnd
	default:
		y = h / 2
		op.SecondaryAlign = text.AlignCenter
	}

	dst := r.dst()
	if a.Border > 0 {
		for _, d := range borderOffsets {
			op.GeoM.Reset()
			op.GeoM.Translate(x+d[0]*a.Border, y+d[1]*a.Border)
			op.GeoM.Concat(geo)
			op.ColorScale.Reset()
			op.ColorScale.ScaleWithColor(a.BorderColor.toRGBA())
			text.Draw(dst, a.Text, face, op)
		}
	}
	op.GeoM.Reset()
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geo)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(a.FontColor.toRGBA())
	text.Draw(dst, a.Text, face, op)
}
