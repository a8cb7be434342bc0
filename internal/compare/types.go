package compare

// Class is the bucket an offset falls into after comparing every stream.
type Class int

const (
	// Same means every stream holds the same value; the offset is discarded.
	Same Class = iota
	// Signal means some streams agree and some differ.
	Signal
	// Noise means no two streams agree.
	Noise
)

func (c Class) String() string {
	switch c {
	case Same:
		return "same"
	case Signal:
		return "signal"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

// Observation is one differing offset and the value each stream holds there,
// in stream order.
type Observation struct {
	Offset int64
	Values []byte
}

type Options struct {
	// ChunkSize bounds how many bytes per file are held in memory at once.
	// Zero or less reads every file whole.
	ChunkSize int64
}

type Result struct {
	Paths  []string
	Size   int64
	Signal []Observation
	Noise  []Observation
}
