package ports

import (
	"log/slog"

	"github.com/spf13/afero"
)

type Logger = *slog.Logger

type FS = afero.Fs
