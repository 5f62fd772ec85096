package util

import (
	"bufio"
	"io"
)

// LineScanner streams non-empty lines from r without loading the whole
// input. Lines longer than the internal buffer are assembled before being
// returned, so callers always see whole lines.
type LineScanner struct {
	r *bufio.Reader
}

func NewLineScannerSize(r io.Reader, size int) *LineScanner {
	return &LineScanner{
		r: bufio.NewReaderSize(r, size),
	}
}

func NewLineScanner(r io.Reader) *LineScanner {
	return NewLineScannerSize(r, 4096)
}

// NextLine returns the next non-empty line without its trailing newline.
// The returned slice is a copy and stays valid across calls. io.EOF marks
// the end of input.
func (s *LineScanner) NextLine() ([]byte, error) {
	for {
		line, isPrefix, err := s.r.ReadLine()
		if err != nil {
			return nil, err
		}
		full := append([]byte(nil), line...)
		for isPrefix {
			line, isPrefix, err = s.r.ReadLine()
			if err != nil {
				return nil, err
			}
			full = append(full, line...)
		}
		if len(full) == 0 {
			continue
		}
		return full, nil
	}
}

// TailLines collects the last n non-empty lines of r in order.
func TailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	s := NewLineScanner(r)
	tail := make([]string, 0, n)
	for {
		line, err := s.NextLine()
		if err == io.EOF {
			return tail, nil
		}
		if err != nil {
			return tail, err
		}
		if len(tail) == n {
			copy(tail, tail[1:])
			tail[n-1] = string(line)
		} else {
			tail = append(tail, string(line))
		}
	}
}
