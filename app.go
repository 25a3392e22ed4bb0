package fixturegen

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cloudcopper/fixturegen/domain/errors"
	"github.com/cloudcopper/fixturegen/domain/models"
	"github.com/cloudcopper/fixturegen/infra"
	"github.com/cloudcopper/fixturegen/infra/config"
	"github.com/cloudcopper/fixturegen/lib"
	"github.com/cloudcopper/fixturegen/lib/wc"
	"github.com/cloudcopper/fixturegen/ports"
	"github.com/oklog/ulid/v2"
)

// App generates fixture file as configured by cfg on the fs.
// Human readable progress goes to out, while log gets the details.
// The error returned is lib.ErrorCode with process exit code.
func App(log ports.Logger, fs ports.FS, cfg *config.Config, out io.Writer) (*models.Result, error) {
	log = log.With(slog.String("run", ulid.Make().String()))

	if err := config.Validate(log, fs, cfg); err != nil {
		return nil, lib.NewErrorCode(err, errors.RetInvalidConfigError)
	}

	// EventBus
	var bus ports.EventBus = infra.NewEventBus()
	defer bus.Shutdown()
	// Reporter prints everything published to report topic
	reporter := NewReporter(log, bus, out)
	defer reporter.Close()

	generator, err := NewFileGenerator(log, bus, fs, cfg)
	if err != nil {
		log.Error("unable to create generator", slog.Any("err", err))
		return nil, lib.NewErrorCode(err, errors.RetInvalidConfigError)
	}
	log.Info("seed", slog.Uint64("seed", generator.Seed()))

	bus.Pub(ports.TopicReport, ports.Event{ports.ReportStart, cfg.FileName, strconv.Itoa(cfg.Lines)})
	result, err := generator.Generate(cfg.FileName, cfg.Lines)
	if err != nil {
		log.Error("unable to generate file", slog.Any("err", err), slog.String("fileName", cfg.FileName))
		return nil, lib.NewErrorCode(err, errors.RetGenerateFileError)
	}
	bus.Pub(ports.TopicReport, ports.Event{ports.ReportDone, result.FileName, strconv.FormatInt(int64(result.Size), 10)})

	if cfg.Stats {
		counts, err := fileStats(fs, result.FileName)
		if err != nil {
			log.Error("unable to count file", slog.Any("err", err), slog.String("fileName", cfg.FileName))
			return result, lib.NewErrorCode(err, errors.RetFileStatsError)
		}
		bus.Pub(ports.TopicReport, ports.Event{
			ports.ReportStats,
			strconv.FormatInt(counts.Lines, 10),
			strconv.FormatInt(counts.Words, 10),
			strconv.FormatInt(counts.Bytes, 10),
			strconv.FormatInt(counts.Chars, 10),
			strconv.FormatInt(counts.MaxLineLength, 10),
		})
	}

	// all messages are printed before return
	reporter.Close()
	return result, nil
}

func fileStats(fs ports.FS, fileName string) (wc.Counts, error) {
	f, err := fs.Open(fileName)
	if err != nil {
		return wc.Counts{}, err
	}
	defer f.Close()

	counts, err := wc.Count(f)
	if err != nil {
		return counts, fmt.Errorf("%v: %w", fileName, err)
	}
	return counts, nil
}
