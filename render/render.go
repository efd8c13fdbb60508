package render

import (
	"fmt"
	"log/slog"

	"img2xlsx/raster"
	"img2xlsx/sheet"
)

// OutputSuffix is appended to the image path to name the workbook.
const OutputSuffix = ".xlsx"

type Options struct {
	OffsetX int
	OffsetY int
	Step    int
	// Progress, if set, is called after every written row with the number
	// of rows done so far and the total.
	Progress func(done, total int)
}

func (o Options) Validate() error {
	switch {
	case o.OffsetX < 0:
		return fmt.Errorf("invalid x offset: %d", o.OffsetX)
	case o.OffsetY < 0:
		return fmt.Errorf("invalid y offset: %d", o.OffsetY)
	case o.Step < 1:
		return fmt.Errorf("invalid step: %d", o.Step)
	}
	return nil
}

type Summary struct {
	Rows    int
	Columns int
	Styles  int
}

// Span counts the samples taken from offset up to size, every step.
func Span(offset, size, step int) int {
	if offset >= size {
		return 0
	}
	return (size-1-offset)/step + 1
}

func OutputPath(imagePath string) string {
	return imagePath + OutputSuffix
}

// Render walks the sampling grid of buf and appends one row of styled
// cells to wb for every sampled image row.
func Render(buf *raster.Buffer, opts Options, wb *sheet.Workbook) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Rows:    Span(opts.OffsetY, buf.Height, opts.Step),
		Columns: Span(opts.OffsetX, buf.Width, opts.Step),
	}
	if sum.Rows == 0 || sum.Columns == 0 {
		sum.Rows, sum.Columns = 0, 0
	}

	if err := wb.SetColumns(sum.Columns); err != nil {
		return Summary{}, err
	}

	styles := wb.Styles()
	row := make([]int, 0, sum.Columns)
	for i := 0; i < sum.Rows; i++ {
		y := opts.OffsetY + i*opts.Step
		row = row[:0]
		for j := 0; j < sum.Columns; j++ {
			x := opts.OffsetX + j*opts.Step
			id, err := styles.Style(buf.Pixel(x, y).Quantize())
			if err != nil {
				return Summary{}, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			row = append(row, id)
		}

		if err := wb.AppendRow(row); err != nil {
			return Summary{}, err
		}
		if opts.Progress != nil {
			opts.Progress(i+1, sum.Rows)
		}
	}

	sum.Styles = styles.Len()
	return sum, nil
}

// Convert renders the image at imagePath into imagePath+".xlsx".
func Convert(imagePath string, opts Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}

	logger := slog.Default().With("file", imagePath)

	buf, imgType, err := raster.Load(imagePath)
	if err != nil {
		return Summary{}, err
	}
	logger.Info("decoded image", "format", imgType, "width", buf.Width, "height", buf.Height,
		"alpha", buf.HasAlpha)

	wb, err := sheet.New(sheet.Options{})
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		if close_err := wb.Close(); close_err != nil {
			logger.Error("could not close workbook", "error", close_err)
		}
	}()

	sum, err := Render(buf, opts, wb)
	if err != nil {
		return Summary{}, err
	}

	dest := OutputPath(imagePath)
	if err = wb.SaveAs(dest); err != nil {
		return Summary{}, err
	}
	logger.Info("saved workbook", "dest", dest, "rows", sum.Rows, "columns", sum.Columns, "styles", sum.Styles)

	return sum, nil
}
