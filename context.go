package grating

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/svg"
)

// Context is my abstraction for Canvas, used for the vector outputs.
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context
}

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c: canvas.New(width, height),
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

// FillRect draws a filled rectangle with its lower left corner at x,y.
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// DrawImage paints img with each pixel a square of side pixelSize. Runs of
// equal pixels on a row become a single rectangle. Canvas y grows upwards so
// row 0 is drawn at the top.
func (ctx *Context) DrawImage(img *Image, pixelSize float64) {
	rgba := img.RGBA()
	for row := 0; row < img.Size; row++ {
		y := float64(img.Size-1-row) * pixelSize
		start := 0
		for col := 1; col <= img.Size; col++ {
			if col < img.Size && rgba.RGBAAt(col, row) == rgba.RGBAAt(start, row) {
				continue
			}
			ctx.SetFillColor(rgba.RGBAAt(start, row))
			ctx.FillRect(float64(start)*pixelSize, y, float64(col-start)*pixelSize, pixelSize)
			start = col
		}
	}
}
