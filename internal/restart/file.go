package restart

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/san-kum/pairsim/internal/comm"
)

func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}

type fileWriter struct {
	f  *os.File
	bw *bufio.Writer
	z  *zstd.Encoder
}

func (w *fileWriter) Write(p []byte) (int, error) {
	if w.z != nil {
		return w.z.Write(p)
	}
	return w.bw.Write(p)
}

func (w *fileWriter) Close() error {
	if w.z != nil {
		if err := w.z.Close(); err != nil {
			w.f.Close()
			return err
		}
	}
	if err := w.bw.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// Create opens path for writing on the root rank and returns nil on every
// other rank.
func Create(path string, c comm.Communicator) (io.WriteCloser, error) {
	if c != nil && !comm.IsRoot(c) {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := &fileWriter{f: f, bw: bufio.NewWriter(f)}
	if compressed(path) {
		w.z, err = zstd.NewWriter(w.bw, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
	}
	return w, nil
}

type fileReader struct {
	f *os.File
	r io.Reader
	z *zstd.Decoder
}

func (r *fileReader) Read(p []byte) (int, error) { return r.r.Read(p) }

func (r *fileReader) Close() error {
	if r.z != nil {
		r.z.Close()
	}
	return r.f.Close()
}

// Open opens path for reading on the root rank and returns nil on every
// other rank.
func Open(path string, c comm.Communicator) (io.ReadCloser, error) {
	if c != nil && !comm.IsRoot(c) {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := &fileReader{f: f, r: bufio.NewReader(f)}
	if compressed(path) {
		r.z, err = zstd.NewReader(r.r)
		if err != nil {
			f.Close()
			return nil, err
		}
		r.r = r.z
	}
	return r, nil
}
