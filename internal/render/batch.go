package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Indices are uint16, so a batch is flushed before it can overflow them.
const batchLimit = 65536 - 64

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// source returns a 1x1 white texture. The 3x3 image keeps sampling away
// from the atlas edges.
func source() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// batch accumulates triangles drawn with additive blending, so overlapping
// lines and points brighten each other instead of covering.
type batch struct {
	vs     []ebiten.Vertex
	is     []uint16
	stroke vector.StrokeOptions
}

func newBatch(lineWidth float32) *batch {
	return &batch{stroke: vector.StrokeOptions{Width: lineWidth}}
}

// line appends a stroked segment with gray intensity g in [0, 1].
func (b *batch) line(x0, y0, x1, y1, g float32) {
	var p vector.Path
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)

	start := len(b.vs)
	b.vs, b.is = p.AppendVerticesAndIndicesForStroke(b.vs, b.is, &b.stroke)
	b.tint(start, g)
}

// quad appends an axis-aligned square of the given size centered on x, y.
func (b *batch) quad(x, y, size, g float32) {
	half := size / 2
	base := uint16(len(b.vs))
	b.vs = append(b.vs,
		ebiten.Vertex{DstX: x - half, DstY: y - half},
		ebiten.Vertex{DstX: x + half, DstY: y - half},
		ebiten.Vertex{DstX: x - half, DstY: y + half},
		ebiten.Vertex{DstX: x + half, DstY: y + half},
	)
	b.is = append(b.is, base, base+1, base+2, base+1, base+3, base+2)
	b.tint(int(base), g)
}

func (b *batch) tint(start int, g float32) {
	for i := start; i < len(b.vs); i++ {
		v := &b.vs[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = g, g, g, 1
	}
}

func (b *batch) full() bool {
	return len(b.vs) >= batchLimit
}

func (b *batch) reset() {
	b.vs = b.vs[:0]
	b.is = b.is[:0]
}

// flush draws the accumulated triangles onto dst and empties the batch.
func (b *batch) flush(dst *ebiten.Image, antialias bool) {
	if len(b.is) > 0 {
		dst.DrawTriangles(b.vs, b.is, source(), &ebiten.DrawTrianglesOptions{
			Blend:     ebiten.BlendLighter,
			AntiAlias: antialias,
		})
	}
	b.reset()
}
