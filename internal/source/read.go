package source

import (
	"fmt"
	"io"
	"os"
)

const bufSize = 1 << 20 // 1 MiB

// Sizes stats every path in order.
func Sizes(paths []string) ([]int64, error) {
	sizes := make([]int64, len(paths))
	for i, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		sizes[i] = st.Size()
	}
	return sizes, nil
}

// CheckEqual returns the common size, or a *LengthMismatchError when any two
// sizes differ.
func CheckEqual(sizes []int64) (int64, error) {
	if len(sizes) == 0 {
		return 0, nil
	}
	for _, s := range sizes[1:] {
		if s != sizes[0] {
			return 0, &LengthMismatchError{Sizes: sizes}
		}
	}
	return sizes[0], nil
}

// ReadAll reads a whole file as raw bytes, reporting progress every MiB.
func ReadAll(path string, onProgress func(n int64)) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var data []byte
	if st, err := f.Stat(); err == nil && st.Size() > 0 {
		data = make([]byte, 0, st.Size())
	}

	buf := make([]byte, bufSize)
	var pending int64
	flush := func() {
		if pending > 0 && onProgress != nil {
			onProgress(pending)
			pending = 0
		}
	}

	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
			pending += int64(n)
			if pending >= bufSize {
				flush()
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}
	}
	flush()

	return data, nil
}

// ReadRange fills buf[:length] from r starting at start. A file shorter than
// start+length is an error.
func ReadRange(r io.ReaderAt, start, length int64, buf []byte, onProgress func(n int64)) ([]byte, error) {
	if start < 0 || length < 0 {
		return nil, fmt.Errorf("invalid range: start=%d length=%d", start, length)
	}
	if int64(len(buf)) < length {
		return nil, fmt.Errorf("buffer too small: have %d want %d", len(buf), length)
	}

	var read int64
	for read < length {
		n, rerr := r.ReadAt(buf[read:length], start+read)
		if n > 0 {
			read += int64(n)
			if onProgress != nil {
				onProgress(int64(n))
			}
		}

		if rerr != nil {
			if rerr == io.EOF && read == length {
				break
			}
			if rerr == io.EOF {
				return nil, fmt.Errorf("unexpected EOF at offset %d (wanted %d bytes total)", start+read, length)
			}
			return nil, rerr
		}
	}

	return buf[:length], nil
}
