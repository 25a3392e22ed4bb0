// Package wc counts lines, words, bytes and characters the way wc(1) does.
package wc

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"
)

type Counts struct {
	Lines         int64
	Words         int64
	Bytes         int64
	Chars         int64
	MaxLineLength int64
}

// Add merges other counts into c
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Bytes += other.Bytes
	c.Chars += other.Chars
	c.MaxLineLength = max(c.MaxLineLength, other.MaxLineLength)
}

// Count reads r till EOF.
// Lines are counted by '\n', so last line without newline is not counted.
// Max line length excludes the newline.
func Count(r io.Reader) (Counts, error) {
	c := Counts{}
	br := bufio.NewReaderSize(r, 64*1024)
	inWord, lineLength := false, int64(0)
	for {
		ch, size, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return c, err
		}
		c.Bytes += int64(size)
		c.Chars++
		if ch == utf8.RuneError && size == 1 {
			// invalid byte is not a char
			c.Chars--
		}

		if ch == '\n' {
			c.Lines++
			c.MaxLineLength = max(c.MaxLineLength, lineLength)
			lineLength = 0
		} else {
			lineLength++
		}

		if unicode.IsSpace(ch) {
			inWord = false
			continue
		}
		if !inWord {
			c.Words++
			inWord = true
		}
	}
	c.MaxLineLength = max(c.MaxLineLength, lineLength)

	return c, nil
}
