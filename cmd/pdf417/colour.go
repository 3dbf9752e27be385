package main

import (
	"fmt"
	"image/color"

	"github.com/pborman/getopt/v2"

	"github.com/ericlevine/pdf417go/render"
)

// colour is a getopt.Value holding an RGBA colour.
type colour struct {
	R, G, B, A uint8
}

func (c *colour) String() string {
	switch *c {
	case colour{0x00, 0x00, 0x00, 0xff}:
		return "black"
	case colour{0xff, 0xff, 0xff, 0xff}:
		return "white"
	}
	if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *colour) Set(s string, _ getopt.Option) error {
	rgba, err := render.ParseColor(s)
	if err != nil {
		return err
	}
	*c = colour(rgba)
	return nil
}

func (c colour) rgba() color.RGBA {
	return color.RGBA(c)
}
