package metrics

import (
	"fmt"
	"io"
	"sync/atomic"
)

type Snapshot struct {
	DurationMs int64
	TotalBytes int64
	Offsets    int64
	Discarded  int64
	Signal     int64
	Noise      int64
	BytesRead  int64
}

func (s *Stats) Snapshot() Snapshot {
	dur := s.Duration()

	return Snapshot{
		DurationMs: dur.Milliseconds(),
		TotalBytes: atomic.LoadInt64(&s.TotalBytes),
		Offsets:    atomic.LoadInt64(&s.Offsets),
		Discarded:  atomic.LoadInt64(&s.Discarded),
		Signal:     atomic.LoadInt64(&s.Signal),
		Noise:      atomic.LoadInt64(&s.Noise),
		BytesRead:  atomic.LoadInt64(&s.BytesRead),
	}
}

func Print(w io.Writer, s *Stats) {
	snap := s.Snapshot()

	fmt.Fprintln(w, "--- stats ---")
	fmt.Fprintln(w, "duration_ms:", snap.DurationMs)
	fmt.Fprintln(w, "offsets:", snap.Offsets)
	fmt.Fprintln(w, "discarded:", snap.Discarded)
	fmt.Fprintln(w, "signal:", snap.Signal)
	fmt.Fprintln(w, "noise:", snap.Noise)
	fmt.Fprintln(w, "bytes_read:", snap.BytesRead)
	fmt.Fprintln(w, "total_bytes:", snap.TotalBytes)

	if snap.DurationMs > 0 {
		secs := float64(snap.DurationMs) / 1000.0
		bps := float64(snap.BytesRead) / secs
		fmt.Fprintln(w, "throughput_bytes_per_sec:", bps)
		fmt.Fprintln(w, "throughput_mb_per_sec:", bps/1_000_000.0)
	}
}
