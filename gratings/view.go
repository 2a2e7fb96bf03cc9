package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/scottkirkwood/grating"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const (
	maxWinWidth  = 1000
	maxWinHeight = 768
)

// show opens a window with imgs and returns when it is closed. Left and right
// arrows step through the images, r resizes to the current one, q quits.
func show(imgs []image.Image) {
	if len(imgs) == 0 {
		return
	}
	driver.Main(func(s screen.Screen) {
		// Auto-size the window with first image
		rect := imgs[0].Bounds()
		winSize := image.Point{
			grating.ClampInt(rect.Dx(), 1, maxWinWidth),
			grating.ClampInt(rect.Dy(), 1, maxWinHeight),
		}

		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		defer w.Release()

		b, err := s.NewBuffer(winSize)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer func() {
			if b != nil {
				b.Release()
			}
		}()

		w.Fill(b.Bounds(), color.Gray{128}, draw.Src)
		w.Publish()

		sz := size.Event{WidthPx: winSize.X, HeightPx: winSize.Y}
		var i int // index of image to display
		newBuffer := func() bool {
			b.Release()
			if b, err = s.NewBuffer(sz.Size()); err != nil {
				fmt.Println(err)
				return false
			}
			return true
		}
		for {
			switch e := w.NextEvent().(type) {
			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeRightArrow:
					i = (i + 1) % len(imgs)
				case key.CodeLeftArrow:
					i = (i + len(imgs) - 1) % len(imgs)
				case key.CodeR:
					// resize to current image
					r := imgs[i].Bounds()
					sz.WidthPx, sz.HeightPx = r.Dx(), r.Dy()
				default:
					continue
				}
				if !newBuffer() {
					return
				}
				w.Send(paint.Event{})

			case paint.Event:
				img := imgs[i]
				draw.Draw(b.RGBA(), b.Bounds(), img, image.Point{}, draw.Src)
				dp := vpCenter(img, sz.WidthPx, sz.HeightPx)
				if dp != (image.Point{}) {
					w.Fill(sz.Bounds(), color.Gray{128}, draw.Src)
				}
				w.Upload(dp, b, b.Bounds())
				w.Publish()

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				fmt.Printf("Screen error: %v\n", e)
				return
			}
		}
	})
}

// vpCenter returns where the origin of img goes so that it is centered in a
// canvas of the given size, or (0, 0) along any dimension where it doesn't fit.
func vpCenter(img image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if img.Bounds().Dx() < canWidth {
		xmargin = (canWidth - img.Bounds().Dx()) / 2
	}
	if img.Bounds().Dy() < canHeight {
		ymargin = (canHeight - img.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}
