package main

import (
	"log/slog"
	"os"

	"img2xlsx/render"

	"github.com/alecthomas/kong"
)

func main() {
	var cli render.CLICmd
	kctx := kong.Parse(&cli,
		kong.Name("img2xlsx"),
		kong.Description("Paint an image into a spreadsheet, one colored cell per sampled pixel."),
		kong.UsageOnError(),
	)

	slog.Info("running", "image", cli.Image, "offsetX", cli.OffsetX, "offsetY", cli.OffsetY, "step", cli.Step)

	if err := kctx.Run(); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}
