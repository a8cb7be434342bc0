package compare

import (
	"TriDiff/internal/metrics"
	"TriDiff/internal/progress"
	"TriDiff/internal/source"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Files compares the files at paths offset by offset. Sizes are checked before
// any byte is read; unequal sizes yield a *source.LengthMismatchError.
// stats and bar may be nil.
func Files(paths []string, opts Options, stats *metrics.Stats, bar *progress.Bar) (*Result, error) {
	if len(paths) < 2 {
		return nil, fmt.Errorf("need at least 2 files, got %d", len(paths))
	}
	if stats == nil {
		stats = &metrics.Stats{}
	}

	sizes, err := source.Sizes(paths)
	if err != nil {
		return nil, err
	}
	size, err := source.CheckEqual(sizes)
	if err != nil {
		return nil, err
	}
	atomic.StoreInt64(&stats.TotalBytes, size*int64(len(paths)))

	log.Debug().Strs("paths", paths).Int64("size", size).Int64("chunk_size", opts.ChunkSize).Msg("comparing files")

	advance := func(n int64) {
		atomic.AddInt64(&stats.BytesRead, n)
		bar.AddBytes(n)
	}

	c := New(len(paths))
	if opts.ChunkSize <= 0 || opts.ChunkSize >= size {
		err = feedWhole(c, paths, size, advance)
	} else {
		err = feedChunked(c, paths, size, opts.ChunkSize, stats, advance)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Paths:  paths,
		Size:   size,
		Signal: c.Signal(),
		Noise:  c.Noise(),
	}
	record(stats, c, size)

	log.Debug().
		Int("signal", len(res.Signal)).
		Int("noise", len(res.Noise)).
		Int64("discarded", c.Discarded()).
		Msg("comparison finished")
	return res, nil
}

func feedWhole(c *Comparator, paths []string, size int64, advance func(int64)) error {
	streams := make([][]byte, len(paths))
	for i, p := range paths {
		data, err := source.ReadAll(p, advance)
		if err != nil {
			return err
		}
		if int64(len(data)) != size {
			return fmt.Errorf("%s: read %d bytes, expected %d", p, len(data), size)
		}
		streams[i] = data
	}
	c.Feed(0, int(size), streams)
	return nil
}

func feedChunked(c *Comparator, paths []string, size, chunk int64, stats *metrics.Stats, advance func(int64)) error {
	files := make([]*os.File, 0, len(paths))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()
	for _, p := range paths {
		f, err := os.Open(p) // #nosec G304
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	bufs := make([][]byte, len(paths))
	for i := range bufs {
		bufs[i] = make([]byte, chunk)
	}
	windows := make([][]byte, len(paths))

	for start := int64(0); start < size; start += chunk {
		n := chunk
		if remain := size - start; remain < n {
			n = remain
		}
		for i, f := range files {
			w, err := source.ReadRange(f, start, n, bufs[i], advance)
			if err != nil {
				return fmt.Errorf("%s: %w", paths[i], err)
			}
			windows[i] = w
		}
		c.Feed(start, int(n), windows)
		record(stats, c, start+n)
	}
	return nil
}

func record(stats *metrics.Stats, c *Comparator, offsets int64) {
	atomic.StoreInt64(&stats.Offsets, offsets)
	atomic.StoreInt64(&stats.Discarded, c.Discarded())
	atomic.StoreInt64(&stats.Signal, int64(len(c.Signal())))
	atomic.StoreInt64(&stats.Noise, int64(len(c.Noise())))
}
