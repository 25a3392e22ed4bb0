package fixturegen

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cloudcopper/fixturegen/domain/errors"
	"github.com/cloudcopper/fixturegen/domain/models"
	"github.com/cloudcopper/fixturegen/infra/config"
	"github.com/cloudcopper/fixturegen/lib"
	"github.com/cloudcopper/fixturegen/lib/random"
	"github.com/cloudcopper/fixturegen/lib/types"
	"github.com/cloudcopper/fixturegen/ports"
)

const writeBufferSize = 1 << 20

// FileGenerator writes files of random lines.
// Progress is published to the bus as ports.ReportProgress events.
type FileGenerator struct {
	log        ports.Logger
	bus        ports.EventBus
	fs         ports.FS
	cfg        *config.Config
	random     *random.Random
	vocabulary random.Vocabulary
}

func NewFileGenerator(log ports.Logger, bus ports.EventBus, fs ports.FS, cfg *config.Config) (*FileGenerator, error) {
	r := random.New(cfg.Seed)
	vocabulary, ok := random.NewVocabulary(cfg.Vocabulary, r)
	if !ok {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnknownVocabulary, cfg.Vocabulary)
	}

	g := &FileGenerator{
		log:        log.With(slog.String("entity", "FileGenerator")),
		bus:        bus,
		fs:         fs,
		cfg:        cfg,
		random:     r,
		vocabulary: vocabulary,
	}
	g.log.Debug("created", slog.Uint64("seed", r.Seed()), slog.String("vocabulary", cfg.Vocabulary))
	return g, nil
}

// Seed returns effective seed, the same seed reproduces the same file
func (g *FileGenerator) Seed() uint64 {
	return g.random.Seed()
}

// GenerateLine returns random line of words in range of [n[0],n[1]]
func (g *FileGenerator) GenerateLine(n []int) string {
	return g.random.Line(g.vocabulary, n, g.cfg.Line.Punctuation)
}

// Generate creates or truncates fileName and writes there lines random lines.
// Any I/O error aborts generation and is returned as is.
func (g *FileGenerator) Generate(fileName string, lines int) (*models.Result, error) {
	log := g.log.With(slog.String("fileName", fileName), slog.Int("lines", lines))
	log.Info("generating")

	f, err := g.fs.Create(fileName)
	if err != nil {
		return nil, err
	}
	// closed explicitly on success, to catch the close error
	defer func() {
		if f != nil {
			f.Close()
		}
	}()

	res := &models.Result{FileName: fileName, Seed: g.Seed(), Lines: lines}
	w := bufio.NewWriterSize(f, writeBufferSize)
	total := strconv.Itoa(lines)
	for i := 0; i < lines; i++ {
		line := g.GenerateLine(g.cfg.Line.Slice())
		empty := false
		if g.random.Chance(g.cfg.Empty.Chance) {
			line, empty = "", true
		}
		// long line overrides empty one
		if g.random.Chance(g.cfg.Long.Chance) {
			line, empty = g.GenerateLine(g.cfg.Long.Slice()), false
			res.Long++
		}
		if empty {
			res.Empty++
		}
		if line != "" {
			res.Words += int64(strings.Count(line, " ") + 1)
		}

		if _, err := w.WriteString(line); err != nil {
			return nil, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return nil, err
		}
		res.Bytes += int64(len(line) + 1)

		if i%g.cfg.Progress == 0 {
			g.bus.Pub(ports.TopicReport, ports.Event{ports.ReportProgress, strconv.Itoa(i), total})
		}
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	err = f.Close()
	f = nil
	if err != nil {
		return nil, err
	}

	size, err := lib.FileSize(g.fs, fileName)
	if err != nil {
		return nil, err
	}
	res.Size = types.Size(size)
	if size != res.Bytes {
		return nil, fmt.Errorf("%w: %v != %v", errors.ErrSizeMismatch, size, res.Bytes)
	}

	log.Info("generated", slog.Int("empty", res.Empty), slog.Int("long", res.Long), slog.Int64("words", res.Words), slog.String("size", res.Size.String()))
	return res, nil
}
