// Package render draws the particle cloud and its proximity graph with
// ebiten, projecting through an orbit camera.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/particle-plexus-go/internal/camera"
)

var (
	background = color.RGBA{0, 0, 0, 255}
	boxColor   = color.RGBA{0x10, 0x10, 0x10, 255}
	panelBg    = color.RGBA{20, 20, 28, 200}
	panelText  = color.RGBA{220, 220, 220, 255}
)

// screen-space vertex
type projected struct {
	x, y float32
	ok   bool
}

// Renderer keeps references to the simulation buffers and the screen
// coordinates derived from them. Buffers handed over by UpdatePoints and
// UpdateLines are reprojected on the next Draw. Lines and points are drawn
// additively, gray lines by their intensity and points in white.
type Renderer struct {
	points     []float32
	pointCount int
	linePos    []float32
	lineCol    []float32
	drawCount  int

	showDots  bool
	showLines bool
	pointSize float32
	box       [8]mgl32.Vec3

	pointsDirty bool
	linesDirty  bool
	vp          mgl32.Mat4
	w, h        int
	pointXY     []projected
	lineXY      []projected
	batch       *batch
}

// New returns a renderer for a cube of half extent rHalf.
func New(rHalf, pointSize float32, showDots, showLines bool) *Renderer {
	r := &Renderer{
		showDots:  showDots,
		showLines: showLines,
		pointSize: pointSize,
		batch:     newBatch(1),
	}
	for i := range r.box {
		r.box[i] = mgl32.Vec3{
			corner(i&1, rHalf),
			corner(i&2, rHalf),
			corner(i&4, rHalf),
		}
	}
	return r
}

func corner(bit int, rHalf float32) float32 {
	if bit != 0 {
		return rHalf
	}
	return -rHalf
}

// UpdatePoints sets the point cloud buffer and its draw range.
func (r *Renderer) UpdatePoints(positions []float32, count int) {
	r.points = positions
	r.pointCount = count
	r.pointsDirty = true
}

// UpdateLines sets the line buffers and the number of vertices to draw.
func (r *Renderer) UpdateLines(positions, colors []float32, drawCount int) {
	r.linePos = positions
	r.lineCol = colors
	r.drawCount = drawCount
	r.linesDirty = true
}

// SetShowDots toggles the point cloud.
func (r *Renderer) SetShowDots(v bool) { r.showDots = v }

// SetShowLines toggles the proximity graph.
func (r *Renderer) SetShowLines(v bool) { r.showLines = v }

// Draw renders the scene onto screen as seen from cam.
func (r *Renderer) Draw(screen *ebiten.Image, cam *camera.Orbit) {
	screen.Fill(background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := cam.ViewProjection()
	moved := vp != r.vp || w != r.w || h != r.h
	r.vp, r.w, r.h = vp, w, h

	r.drawBox(screen)

	if r.showLines {
		if r.linesDirty || moved {
			r.lineXY = r.project(r.lineXY, r.linePos, r.drawCount)
			r.linesDirty = false
		}
		r.drawLines(screen)
	}

	if r.showDots {
		if r.pointsDirty || moved {
			r.pointXY = r.project(r.pointXY, r.points, r.pointCount)
			r.pointsDirty = false
		}
		r.drawPoints(screen)
	}
}

func (r *Renderer) project(dst []projected, buf []float32, n int) []projected {
	dst = dst[:0]
	for i := 0; i < n; i++ {
		p := mgl32.Vec3{buf[i*3], buf[i*3+1], buf[i*3+2]}
		x, y, ok := camera.Project(r.vp, p, r.w, r.h)
		dst = append(dst, projected{x, y, ok})
	}
	return dst
}

func (r *Renderer) drawBox(screen *ebiten.Image) {
	var c [8]projected
	for i, p := range r.box {
		x, y, ok := camera.Project(r.vp, p, r.w, r.h)
		c[i] = projected{x, y, ok}
	}
	// corners differing in exactly one bit share an edge
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			j := i | bit
			if j == i || !c[i].ok || !c[j].ok {
				continue
			}
			vector.StrokeLine(screen, c[i].x, c[i].y, c[j].x, c[j].y, 1, boxColor, true)
		}
	}
}

func (r *Renderer) drawLines(screen *ebiten.Image) {
	for v := 0; v+1 < len(r.lineXY); v += 2 {
		a, b := r.lineXY[v], r.lineXY[v+1]
		if !a.ok || !b.ok {
			continue
		}
		r.batch.line(a.x, a.y, b.x, b.y, r.lineCol[v*3])
		if r.batch.full() {
			r.batch.flush(screen, true)
		}
	}
	r.batch.flush(screen, true)
}

func (r *Renderer) drawPoints(screen *ebiten.Image) {
	for _, p := range r.pointXY {
		if !p.ok {
			continue
		}
		r.batch.quad(p.x, p.y, r.pointSize, 1)
		if r.batch.full() {
			r.batch.flush(screen, false)
		}
	}
	r.batch.flush(screen, false)
}

// DrawPanel draws the control panel rows in the top right corner.
func DrawPanel(screen *ebiten.Image, rows []string) {
	const (
		rowHeight = 16
		charWidth = 7
		pad       = 8
	)
	width := 0
	for _, row := range rows {
		width = max(width, len(row)*charWidth)
	}
	x := screen.Bounds().Dx() - width - 3*pad
	vector.DrawFilledRect(screen, float32(x), float32(pad), float32(width+2*pad), float32(len(rows)*rowHeight+pad), panelBg, false)
	for i, row := range rows {
		text.Draw(screen, row, basicfont.Face7x13, x+pad, pad+(i+1)*rowHeight, panelText)
	}
}

// DrawOverlay prints the performance line in the top left corner.
func DrawOverlay(screen *ebiten.Image, line string) {
	ebitenutil.DebugPrintAt(screen, line, 8, 8)
}
