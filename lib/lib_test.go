package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestGetEnvDefault(t *testing.T) {
	assert := require.New(t)
	t.Setenv("FIXTUREGEN_TEST_SET", "value")
	t.Setenv("FIXTUREGEN_TEST_BLANK", " ")
	assert.Equal("value", GetEnvDefault("FIXTUREGEN_TEST_SET", "default"))
	assert.Equal("default", GetEnvDefault("FIXTUREGEN_TEST_BLANK", "default"))
	assert.Equal("default", GetEnvDefault("FIXTUREGEN_TEST_UNSET", "default"))
}

func TestFileSize(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	assert.True(NoSuchFile(fs, "a.txt"))
	_, err := FileSize(fs, "a.txt")
	assert.Error(err)

	assert.NoError(afero.WriteFile(fs, "a.txt", []byte("hello\n"), 0o644))
	assert.False(NoSuchFile(fs, "a.txt"))
	size, err := FileSize(fs, "a.txt")
	assert.NoError(err)
	assert.Equal(int64(6), size)
}

func TestErrorCode(t *testing.T) {
	assert := require.New(t)
	const errTest = Error("test error")
	err := fmt.Errorf("wrapped: %w", NewErrorCode(errTest, 42))
	assert.ErrorIs(err, errTest)

	var e ErrorCode
	assert.True(errors.As(err, &e))
	assert.Equal(42, e.Code())
	assert.Equal("test error", e.Error())
}

func TestAssert(t *testing.T) {
	assert := require.New(t)
	assert.NotPanics(func() { Assert(true, "never") })
	assert.PanicsWithValue("bad 1", func() { Assert(false, "bad %d", 1) })
}

func TestValidatorParentDir(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	assert.NoError(fs.MkdirAll("/out", 0o755))
	v := NewValidator(fs)
	assert.NoError(v.Var("/out/file.txt", "parentdir"))
	assert.Error(v.Var("/missing/file.txt", "parentdir"))
}
