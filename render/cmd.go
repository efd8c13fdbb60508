package render

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	pb "github.com/cheggaaa/pb/v3"
)

type CLICmd struct {
	Image   string `arg:"" help:"Image file to convert (gif, jpeg, png, bmp, tiff or webp)"`
	OffsetX int    `arg:"" help:"Horizontal pixel to start sampling from"`
	OffsetY int    `arg:"" help:"Vertical pixel to start sampling from"`
	Step    int    `arg:"" help:"Distance in pixels between samples, in both directions"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	return c.options().Validate()
}

func (c *CLICmd) options() Options {
	return Options{
		OffsetX: c.OffsetX,
		OffsetY: c.OffsetY,
		Step:    c.Step,
	}
}

func (c *CLICmd) Run() error {
	opts := c.options()

	var bar *pb.ProgressBar
	opts.Progress = func(done, total int) {
		if bar == nil {
			bar = pb.StartNew(total)
		}
		bar.SetCurrent(int64(done))
	}

	sum, err := Convert(c.Image, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("could not convert %q: %w", c.Image, err)
	}

	slog.Info("stats", "rows", sum.Rows, "columns", sum.Columns, "cells", sum.Rows*sum.Columns,
		"styles", sum.Styles)
	return nil
}
