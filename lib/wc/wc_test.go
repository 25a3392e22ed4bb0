package wc

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	testCases := []struct {
		desc string
		in   string
		out  Counts
	}{
		{"empty", "", Counts{}},
		{"newline", "\n", Counts{Lines: 1, Bytes: 1, Chars: 1}},
		{"blank lines", "\n\n\n", Counts{Lines: 3, Bytes: 3, Chars: 3}},
		{"one line", "the be to\n", Counts{Lines: 1, Words: 3, Bytes: 10, Chars: 10, MaxLineLength: 9}},
		{"no trailing newline", "of and", Counts{Lines: 0, Words: 2, Bytes: 6, Chars: 6, MaxLineLength: 6}},
		{"punctuation", "the, be! to\n\na\n", Counts{Lines: 3, Words: 4, Bytes: 15, Chars: 15, MaxLineLength: 11}},
		{"extra spaces", "  a \t b  \n", Counts{Lines: 1, Words: 2, Bytes: 10, Chars: 10, MaxLineLength: 9}},
		{"multibyte", "héllo wörld\n", Counts{Lines: 1, Words: 2, Bytes: 14, Chars: 12, MaxLineLength: 11}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.desc, func(t *testing.T) {
			assert := require.New(t)
			c, err := Count(strings.NewReader(testCase.in))
			assert.NoError(err)
			assert.Equal(testCase.out, c)
		})
	}
}

func TestCountError(t *testing.T) {
	assert := require.New(t)
	_, err := Count(iotest.ErrReader(iotest.ErrTimeout))
	assert.ErrorIs(err, iotest.ErrTimeout)
}

func TestAdd(t *testing.T) {
	assert := require.New(t)
	c := Counts{Lines: 1, Words: 2, Bytes: 3, Chars: 3, MaxLineLength: 10}
	c.Add(Counts{Lines: 2, Words: 3, Bytes: 4, Chars: 4, MaxLineLength: 5})
	assert.Equal(Counts{Lines: 3, Words: 5, Bytes: 7, Chars: 7, MaxLineLength: 10}, c)
}
