package lib

import (
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// NewValidator returns validator with custom rules resolved on fs
func NewValidator(fs afero.Fs) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// parentdir checks the file could be created, i.e. its directory exists
	v.RegisterValidation("parentdir", func(fl validator.FieldLevel) bool {
		dir := filepath.Dir(fl.Field().String())
		exist, _ := afero.DirExists(fs, dir)
		return exist
	})

	return v
}
