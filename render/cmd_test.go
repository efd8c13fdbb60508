package render

import (
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func parse(t *testing.T, args ...string) (*CLICmd, error) {
	t.Helper()
	var cli CLICmd
	parser, err := kong.New(&cli, kong.Exit(func(code int) {
		t.Fatalf("unexpected exit with code %d", code)
	}))
	require.NoError(t, err)

	_, err = parser.Parse(args)
	return &cli, err
}

func TestCLIParse(t *testing.T) {
	cli, err := parse(t, "cat.png", "3", "4", "5")
	require.NoError(t, err)

	assert.Equal(t, "cat.png", cli.Image)
	assert.Equal(t, Options{OffsetX: 3, OffsetY: 4, Step: 5}, cli.options())
}

func TestCLIParseErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"non-numeric x":    {"cat.png", "a", "0", "1"},
		"non-numeric y":    {"cat.png", "0", "1.5", "1"},
		"non-numeric step": {"cat.png", "0", "0", "two"},
		"missing step":     {"cat.png", "0", "0"},
		"no arguments":     {},
		"zero step":        {"cat.png", "0", "0", "0"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parse(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestCLIRun(t *testing.T) {
	path := writePNG(t, primaries())

	cli, err := parse(t, path, "0", "0", "1")
	require.NoError(t, err)
	require.NoError(t, cli.Run())

	f, err := excelize.OpenFile(OutputPath(path))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "00F000", fillHex(t, f, 2, 1))
	assert.Equal(t, "0000F0", fillHex(t, f, 1, 2))
}

func TestCLIRunMissingImage(t *testing.T) {
	cli := &CLICmd{Image: "does-not-exist.png", Step: 1}

	err := cli.Run()
	assert.ErrorContains(t, err, "does-not-exist.png")
}

func TestCLIRunLargeStep(t *testing.T) {
	path := writePNG(t, primaries())

	cli, err := parse(t, path, "1", "1", "9223372036854775807")
	require.NoError(t, err)
	require.NoError(t, cli.Run())

	f, err := excelize.OpenFile(OutputPath(path))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "F0F0F0", fillHex(t, f, 1, 1))
}

func TestCLIRunWriteError(t *testing.T) {
	path := writePNG(t, primaries())
	require.NoError(t, os.Mkdir(OutputPath(path), 0o755))

	cli := &CLICmd{Image: path, Step: 1}
	err := cli.Run()
	assert.ErrorContains(t, err, "could not convert")
	assert.ErrorContains(t, err, "could not save workbook")
}
