package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cloudcopper/fixturegen/domain/errors"
	"github.com/cloudcopper/fixturegen/lib"
	"github.com/cloudcopper/fixturegen/lib/random"
	"github.com/cloudcopper/fixturegen/ports"
	tpl "github.com/cloudcopper/misc/env/template"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	FileName        = "test_large.txt"
	ProfileFileName = "fixturegen.yml"
)

const (
	DefaultLines    = 1_000_000
	DefaultProgress = 100_000
)

// Range is inclusive range of words per line
type Range struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

func (r Range) Slice() []int {
	return []int{r.Min, r.Max}
}

type Line struct {
	Range       `yaml:",inline"`
	Punctuation float64 `yaml:"punctuation" validate:"gte=0,lte=1"`
}

type Long struct {
	Range  `yaml:",inline"`
	Chance float64 `yaml:"chance" validate:"gte=0,lte=1"`
}

type Empty struct {
	Chance float64 `yaml:"chance" validate:"gte=0,lte=1"`
}

// Config is the generator profile
type Config struct {
	FileName   string `yaml:"-" validate:"required,parentdir"`
	Lines      int    `yaml:"lines" validate:"gte=0"`
	Seed       uint64 `yaml:"seed"`
	Vocabulary string `yaml:"vocabulary" validate:"oneof=common lorem"`
	Progress   int    `yaml:"progress" validate:"gt=0"`
	Stats      bool   `yaml:"stats"`
	Line       Line   `yaml:"line"`
	Long       Long   `yaml:"long"`
	Empty      Empty  `yaml:"empty"`
}

func Default() *Config {
	return &Config{
		FileName:   FileName,
		Lines:      DefaultLines,
		Vocabulary: random.VocabularyCommon,
		Progress:   DefaultProgress,
		Line: Line{
			Range:       Range{Min: 1, Max: 20},
			Punctuation: 0.1,
		},
		Long: Long{
			Range:  Range{Min: 50, Max: 100},
			Chance: 0.005,
		},
		Empty: Empty{
			Chance: 0.01,
		},
	}
}

func (c *Config) String() string {
	blob, err := yaml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("filename: %v\n%s", c.FileName, strings.TrimSuffix(string(blob), "\n"))
}

// LoadConfig returns default config updated by the profile file, if one exists.
// The profile is executed as env template before unmarshal.
func LoadConfig(log ports.Logger, fs ports.FS, fileName string) (*Config, error) {
	cfg := Default()

	if fileName != "" && !lib.NoSuchFile(fs, fileName) {
		log.Info("loading profile", slog.String("fileName", fileName))
		if err := loadProfile(fs, fileName, cfg); err != nil {
			return nil, fmt.Errorf("%v: %w", fileName, err)
		}
	} else {
		log.Debug("no profile", slog.String("fileName", fileName))
	}

	return cfg, nil
}

func loadProfile(fs ports.FS, fileName string, cfg *Config) error {
	blob, err := afero.ReadFile(fs, fileName)
	if err != nil {
		return err
	}

	// parse profile as template
	t, err := tpl.Parse(string(blob))
	if err != nil {
		return err
	}
	// execute template
	s, err := t.Execute()
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(strings.NewReader(s))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks config, the parentdir of file name is checked on fs
func Validate(log ports.Logger, fs ports.FS, cfg *Config) error {
	v := lib.NewValidator(fs)
	err := v.Struct(cfg)
	if err == nil {
		// dump effective config
		for _, s := range strings.Split(cfg.String(), "\n") {
			log.Debug(s)
		}
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range verrs {
			log.Error("invalid config", slog.String("field", e.Namespace()), slog.String("rule", e.Tag()), slog.Any("value", e.Value()))
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
}
