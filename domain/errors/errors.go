package errors

import (
	"errors"

	"github.com/cloudcopper/fixturegen/lib"
)

const ErrInvalidConfig = lib.Error("invalid config")
const ErrUnknownVocabulary = lib.Error("unknown vocabulary")
const ErrSizeMismatch = lib.Error("reported size does not match written bytes")

var Is = errors.Is
var As = errors.As
