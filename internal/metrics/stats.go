package metrics

import "time"

type Stats struct {
	TotalBytes int64

	Offsets   int64
	Discarded int64
	Signal    int64
	Noise     int64

	BytesRead int64
	Started   time.Time
	Finished  time.Time
}

func (s *Stats) Start() { s.Started = time.Now() }
func (s *Stats) Stop()  { s.Finished = time.Now() }
func (s *Stats) Duration() time.Duration {
	if s.Finished.IsZero() {
		return time.Since(s.Started)
	}
	return s.Finished.Sub(s.Started)
}
