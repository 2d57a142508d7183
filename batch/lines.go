// SPDX-License-Identifier: MIT

package batch

import (
	"bufio"
	"errors"
	"io"
)

// lineReader splits input into lines like bufio.ScanLines, except that a
// line longer than limit is reported as too long and its bytes are dropped
// instead of failing the whole stream.
type lineReader struct {
	br    *bufio.Reader
	limit int
	buf   []byte
}

func newLineReader(r io.Reader, limit int) *lineReader {
	return &lineReader{br: bufio.NewReaderSize(r, 64*1024), limit: limit}
}

// next returns the next line including any line terminator. The slice is
// valid until the following call. long reports that the line exceeded the
// limit; line is then empty. io.EOF is returned once the input is exhausted.
func (lr *lineReader) next() (line []byte, long bool, err error) {
	lr.buf = lr.buf[:0]
	for {
		chunk, err := lr.br.ReadSlice('\n')
		if !long {
			if len(lr.buf)+len(chunk) > lr.limit+1 { // +1 for the '\n'
				long = true
				lr.buf = lr.buf[:0]
			} else {
				lr.buf = append(lr.buf, chunk...)
			}
		}

		switch {
		case err == nil:
			return lr.buf, long, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !long && len(lr.buf) == 0 {
				return nil, false, io.EOF
			}
			return lr.buf, long, nil
		default:
			return nil, false, err
		}
	}
}
