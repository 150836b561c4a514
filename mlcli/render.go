package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"

	"github.com/npillmayer/mathlist/dimen"
	"github.com/npillmayer/mathlist/node"
	"golang.org/x/image/vector"
)

// margin around a rendered hlist, in points
const margin = 2 * dimen.PT

var (
	charColor = color.RGBA{200, 210, 240, 255}
	ruleColor = color.RGBA{0, 0, 0, 255}
	lineColor = color.RGBA{255, 0, 0, 255}
)

// canvas draws boxes and rules of an hlist, scaled by ppt pixels per point.
type canvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
	ppt  float32
}

func (c *canvas) px(d dimen.Dimen) float32 {
	return float32(d.Points()) * c.ppt
}

// rect fills the rectangle with top left corner (x,y), in points.
func (c *canvas) rect(x, y, w, h dimen.Dimen, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	c.rast.DrawOp = draw.Over
	x0, y0 := c.px(x), c.px(y)
	x1, y1 := c.px(x+w), c.px(y+h)
	c.rast.MoveTo(x0, y0)
	c.rast.LineTo(x1, y0)
	c.rast.LineTo(x1, y1)
	c.rast.LineTo(x0, y1)
	c.rast.ClosePath()
	c.rast.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// renderHList draws an hlist as a box diagram: characters as their bounding
// boxes, rules in black and the baseline in red.
func renderHList(hlist node.Node, ppt float32) *image.RGBA {
	b := node.HPack(hlist, node.Natural, node.Additional)
	c := &canvas{ppt: ppt}
	width := int(c.px(b.Width+2*margin) + 1)
	height := int(c.px(b.Height+b.Depth+2*margin) + 1)
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)
	c.rast = vector.NewRasterizer(width, height)
	baseline := margin + b.Height
	c.rect(0, baseline, b.Width+2*margin, dimen.FromPoints(float64(1/ppt)), lineColor)
	c.hlist(b, margin, baseline)
	return c.img
}

// hlist draws the contents of box b with its reference point at (x,y).
func (c *canvas) hlist(b *node.Box, x, y dimen.Dimen) {
	for p := b.List; p != nil; p = p.Link() {
		switch n := p.(type) {
		case *node.Char:
			c.rect(x, y-n.Height, n.Width, n.Height+n.Depth, charColor)
			x += n.Width
		case *node.Box:
			c.box(n, x, y+n.Shift)
			x += n.Width
		case *node.Rule:
			h, d := n.Height, n.Depth
			if h == node.Running {
				h = b.Height
			}
			if d == node.Running {
				d = b.Depth
			}
			c.rect(x, y-h, n.Width, h+d, ruleColor)
			x += n.Width
		case *node.Glue:
			x += setGlue(b, n.Spec)
		case *node.Kern:
			x += n.Width
		case *node.Math:
			x += n.Width
		}
	}
}

// vlist draws the contents of box b with its top left corner at (x,y).
func (c *canvas) vlist(b *node.Box, x, y dimen.Dimen) {
	for p := b.List; p != nil; p = p.Link() {
		switch n := p.(type) {
		case *node.Box:
			y += n.Height
			c.box(n, x+n.Shift, y)
			y += n.Depth
		case *node.Rule:
			w := n.Width
			if w == node.Running {
				w = b.Width
			}
			c.rect(x, y, w, n.Height+n.Depth, ruleColor)
			y += n.Height + n.Depth
		case *node.Glue:
			y += setGlue(b, n.Spec)
		case *node.Kern:
			y += n.Width
		}
	}
}

// box draws box b with its reference point at (x,y).
func (c *canvas) box(b *node.Box, x, y dimen.Dimen) {
	if b.IsVList() {
		c.vlist(b, x, y-b.Height)
		return
	}
	c.hlist(b, x, y)
}

// setGlue is the size of glue g within box b.
func setGlue(b *node.Box, g node.GlueSpec) dimen.Dimen {
	w := g.Width
	switch {
	case b.GlueSign == node.Stretching && g.StretchOrder == b.GlueOrder:
		w += dimen.Dimen(b.GlueSet * float64(g.Stretch))
	case b.GlueSign == node.Shrinking && g.ShrinkOrder == b.GlueOrder:
		w -= dimen.Dimen(b.GlueSet * float64(g.Shrink))
	}
	return w
}

// pngOp writes the hlist of the last conversion to a PNG file, e.g.
// "png:formula.png:20" at 20 pixels per point.
func pngOp(intp *Intp, op *Op) (bool, error) {
	if intp.hlist == nil {
		return false, errors.New("nothing converted yet; use show first")
	}
	if op.arg == "" {
		return false, errors.New("usage: png:file[:pixels-per-point]")
	}
	ppt := float32(10)
	if op.format != "" {
		x, err := strconv.ParseFloat(op.format, 32)
		if err != nil || x <= 0 {
			return false, fmt.Errorf("illegal resolution %q", op.format)
		}
		ppt = float32(x)
	}
	img := renderHList(intp.hlist, ppt)
	f, err := os.Create(op.arg)
	if err != nil {
		return false, fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return false, fmt.Errorf("cannot encode png: %w", err)
	}
	tracer().Infof("wrote %s", op.arg)
	return false, nil
}
