package fixturegen

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cloudcopper/fixturegen/domain/errors"
	"github.com/cloudcopper/fixturegen/infra/config"
	"github.com/cloudcopper/fixturegen/lib"
	"github.com/cloudcopper/fixturegen/lib/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	cfg := config.Default()
	cfg.Lines = 250_000
	cfg.Seed = 1
	cfg.Stats = true
	out := &bytes.Buffer{}

	result, err := App(slog.Default(), fs, cfg, out)
	assert.NoError(err)

	size, err := lib.FileSize(fs, "test_large.txt")
	assert.NoError(err)
	assert.Equal(types.Size(size), result.Size)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(lines, 6)
	assert.Equal("Generating test file 'test_large.txt' with 250,000 lines...", lines[0])
	assert.Equal("Generated 0 lines...", lines[1])
	assert.Equal("Generated 100,000 lines...", lines[2])
	assert.Equal("Generated 200,000 lines...", lines[3])
	assert.Equal("Done! File size: "+result.Size.MB(), lines[4])
	assert.True(strings.HasPrefix(lines[5], "250,000 lines, "+types.Count(result.Words).String()+" words, "+types.Count(size).String()+" bytes"), lines[5])
}

func TestAppZeroLines(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	cfg := config.Default()
	cfg.Lines = 0
	out := &bytes.Buffer{}

	result, err := App(slog.Default(), fs, cfg, out)
	assert.NoError(err)
	assert.Zero(result.Size)
	assert.Equal("Generating test file 'test_large.txt' with 0 lines...\nDone! File size: 0.00 MB\n", out.String())
}

func TestAppInvalidConfig(t *testing.T) {
	assert := require.New(t)
	cfg := config.Default()
	cfg.Line.Min, cfg.Line.Max = 5, 1

	_, err := App(slog.Default(), afero.NewMemMapFs(), cfg, &bytes.Buffer{})
	assert.Error(err)
	assert.True(errors.Is(err, errors.ErrInvalidConfig))
	var e lib.ErrorCode
	assert.True(errors.As(err, &e))
	assert.Equal(errors.RetInvalidConfigError, e.Code())
}

func TestAppWriteError(t *testing.T) {
	assert := require.New(t)
	cfg := config.Default()
	cfg.Lines = 10

	_, err := App(slog.Default(), afero.NewReadOnlyFs(afero.NewMemMapFs()), cfg, &bytes.Buffer{})
	assert.Error(err)
	var e lib.ErrorCode
	assert.True(errors.As(err, &e))
	assert.Equal(errors.RetGenerateFileError, e.Code())
}
