package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/scroll-room/engine"
)

const maxLine = 8 * 1024 * 1024

// Reader yields frames in recorded order
type Reader struct {
	dec    *zstd.Decoder
	sc     *bufio.Scanner
	closer io.Closer
	line   int
}

// Open reads the trace at path
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

func NewReader(src io.Reader) (*Reader, error) {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{dec: dec, sc: sc}, nil
}

// Next returns the next frame, or io.EOF after the last one
func (r *Reader) Next() (engine.Frame, error) {
	var f engine.Frame
	for r.sc.Scan() {
		r.line++
		b := r.sc.Bytes()
		if len(b) == 0 {
			continue
		}
		if err := json.Unmarshal(b, &f); err != nil {
			return f, fmt.Errorf("trace line %d: %w", r.line, err)
		}
		return f, nil
	}
	if err := r.sc.Err(); err != nil {
		return f, err
	}
	return f, io.EOF
}

// ReadAll drains the remaining frames
func (r *Reader) ReadAll() ([]engine.Frame, error) {
	var out []engine.Frame
	for {
		f, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, f)
	}
}

func (r *Reader) Close() error {
	r.dec.Close()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
