package plot

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/quadrant-tools-mcp/internal/angle"
	"github.com/ironsheep/quadrant-tools-mcp/internal/coords"
	"github.com/ironsheep/quadrant-tools-mcp/internal/quadrant"
)

// ErrNoPoints is returned by RenderDistribution for an empty point list.
var ErrNoPoints = errors.New("no points to plot")

// Result contains a rendered plot.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Title       string `json:"title"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	SavedPath   string `json:"saved_path,omitempty"`

	img image.Image
}

// Image returns the rendered image.
func (r *Result) Image() image.Image {
	return r.img
}

// Save writes the image as PNG into dir and records the path in SavedPath.
func (r *Result) Save(dir string) (string, error) {
	path, err := Save(r.img, dir)
	if err != nil {
		return "", err
	}
	r.SavedPath = path
	return path, nil
}

// Save writes img into dir as quadrants-<uuid>.png, creating dir if needed.
func Save(img image.Image, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, "quadrants-"+uuid.NewString()+".png")
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("failed to save plot: %w", err)
	}
	return path, nil
}

// AngleLabels returns the boundary labels for the 0, 1/4, 1/2 and 3/4 turn
// positions of unit u.
func AngleLabels(u angle.Unit) [4]string {
	w := u.QuadrantWidth()
	suffix := " deg"
	if u == angle.Gon {
		suffix = " gon"
	}
	var labels [4]string
	for i := range labels {
		labels[i] = fmt.Sprintf("%g%s", float64(i)*w, suffix)
	}
	return labels
}

// QuadrantColor returns a distinct color per quadrant, taking the hue from the
// quadrant's direction on the circle.
func QuadrantColor(q quadrant.Quadrant) color.Color {
	hue := 45 + 90*float64(q-1)
	return colorful.Hcl(hue, 0.7, 0.45).Clamped()
}

// quadrantRect returns the canvas rectangle covered by q on a size x size canvas.
func quadrantRect(q quadrant.Quadrant, size int) image.Rectangle {
	c := size / 2
	switch q {
	case quadrant.First:
		return image.Rect(c, 0, size, c)
	case quadrant.Second:
		return image.Rect(0, 0, c, c)
	case quadrant.Third:
		return image.Rect(0, c, c, size)
	case quadrant.Fourth:
		return image.Rect(c, c, size, size)
	}
	return image.Rectangle{}
}

// RenderSet draws an angle diagram with the quadrants of set shaded.
// labels are drawn at the right, top, left and bottom axis ends, in that order.
func RenderSet(set quadrant.Set, labels [4]string, cfg Config) (*Result, error) {
	size := cfg.Size
	if err := checkSize(size); err != nil {
		return nil, err
	}

	canvas := imaging.New(size, size, cfg.background())
	for _, q := range set.Quadrants() {
		r := quadrantRect(q, size)
		if r.Empty() {
			continue
		}
		patch := imaging.New(r.Dx(), r.Dy(), cfg.shade())
		canvas = imaging.Overlay(canvas, patch, r.Min, cfg.opacity())
	}

	c := size / 2
	drawAxes(canvas, image.Pt(c, c), cfg.axis())

	ink := cfg.text()
	face := basicfont.Face7x13
	drawText(canvas, size-textWidth(labels[0])-4, c-4, labels[0], ink)
	drawText(canvas, c+4, face.Ascent+2, labels[1], ink)
	drawText(canvas, 4, c-4, labels[2], ink)
	drawText(canvas, c+4, size-4, labels[3], ink)

	title := "Quadrant(s): " + joinNumbers(set)
	drawText(canvas, 4, face.Ascent+2, title, ink)

	return encode(canvas, title)
}

// RenderDistribution draws points around here with axes through here and the
// per-quadrant counts written in each quarter of the canvas.
func RenderDistribution(here coords.Point, points []coords.Point, counts map[quadrant.Quadrant]int, cfg Config) (*Result, error) {
	size := cfg.Size
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	proj := newProjection(here, points, size)

	canvas := imaging.New(size, size, cfg.background())

	markers := image.NewRGBA(image.Rect(0, 0, size, size))
	marker := image.NewUniform(cfg.point())
	for _, p := range points {
		px := proj.pixel(p)
		r := image.Rect(px.X-2, px.Y-2, px.X+3, px.Y+3).Intersect(markers.Bounds())
		draw.Draw(markers, r, marker, image.Point{}, draw.Src)
	}
	composite := blend.Normal(canvas, markers)

	drawAxes(composite, proj.pixel(here), cfg.axis())

	quarters := map[quadrant.Quadrant]image.Point{
		quadrant.First:  image.Pt(size*3/4, size/4),
		quadrant.Second: image.Pt(size/4, size/4),
		quadrant.Third:  image.Pt(size/4, size*3/4),
		quadrant.Fourth: image.Pt(size*3/4, size*3/4),
	}
	for _, q := range quadrant.All {
		label := fmt.Sprint(counts[q])
		at := quarters[q]
		drawText(composite, at.X-textWidth(label)/2, at.Y, label, QuadrantColor(q))
	}

	title := fmt.Sprintf("Quadrant counts of %d positions", len(points))
	drawText(composite, 4, basicfont.Face7x13.Ascent+2, title, cfg.text())

	return encode(composite, title)
}

// projection maps data coordinates onto the canvas with a 10% margin.
type projection struct {
	minX, minY   float64
	spanX, spanY float64
	size         int
}

func newProjection(here coords.Point, points []coords.Point, size int) projection {
	minX, maxX := here.X, here.X
	minY, maxY := here.Y, here.Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	return projection{
		minX:  minX - spanX*0.1,
		minY:  minY - spanY*0.1,
		spanX: spanX * 1.2,
		spanY: spanY * 1.2,
		size:  size,
	}
}

func (p projection) pixel(pt coords.Point) image.Point {
	last := float64(p.size - 1)
	x := (pt.X - p.minX) / p.spanX * last
	y := last - (pt.Y-p.minY)/p.spanY*last
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

// drawAxes draws a horizontal and a vertical line through origin.
func drawAxes(img draw.Image, origin image.Point, c color.Color) {
	b := img.Bounds()
	if origin.Y >= b.Min.Y && origin.Y < b.Max.Y {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, origin.Y, c)
		}
	}
	if origin.X >= b.Min.X && origin.X < b.Max.X {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.Set(origin.X, y, c)
		}
	}
}

// drawText draws text with its baseline starting at (x, y).
func drawText(img draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func textWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

func joinNumbers(set quadrant.Set) string {
	nums := make([]string, 0, set.Len())
	for _, n := range set.Numbers() {
		nums = append(nums, fmt.Sprint(n))
	}
	return strings.Join(nums, ",")
}

func encode(img image.Image, title string) (*Result, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}

	b := img.Bounds()
	return &Result{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Title:       title,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		img:         img,
	}, nil
}
