package sheet

import (
	"fmt"

	"img2xlsx/palette"

	"github.com/xuri/excelize/v2"
)

type styler interface {
	NewStyle(style *excelize.Style) (int, error)
}

// StyleCache hands out one solid fill style per quantized color. Colors
// sharing a quantized value always get the same style ID.
type StyleCache struct {
	file styler
	ids  map[uint16]int
}

func NewStyleCache(file styler) *StyleCache {
	return &StyleCache{
		file: file,
		ids:  make(map[uint16]int),
	}
}

func (c *StyleCache) Style(col palette.RGB) (int, error) {
	key := col.Key()
	if id, ok := c.ids[key]; ok {
		return id, nil
	}

	q := col.Quantize()
	id, err := c.file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{q.Hex()},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("could not create fill style for %s: %w", q, err)
	}

	c.ids[key] = id
	return id, nil
}

func (c *StyleCache) Len() int {
	return len(c.ids)
}
