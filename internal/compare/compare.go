package compare

// Classify places one column of values (one per stream) into a Class.
// Callers pass at least two values.
func Classify(values []byte) Class {
	first := values[0]
	same := true
	for _, v := range values[1:] {
		if v != first {
			same = false
			break
		}
	}
	if same {
		return Same
	}

	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] == values[j] {
				return Signal
			}
		}
	}
	return Noise
}

// Comparator accumulates observations over aligned windows of N streams.
// Windows must be fed in ascending offset order for the lists to stay sorted.
type Comparator struct {
	n      int
	column []byte
	signal []Observation
	noise  []Observation

	discarded int64
}

func New(n int) *Comparator {
	return &Comparator{
		n:      n,
		column: make([]byte, n),
	}
}

// Feed classifies length offsets of the given windows. windows[k][i] is the
// value of stream k at offset base+i; every window holds at least length bytes.
func (c *Comparator) Feed(base int64, length int, windows [][]byte) {
	for i := 0; i < length; i++ {
		for k, w := range windows {
			c.column[k] = w[i]
		}

		switch Classify(c.column) {
		case Same:
			c.discarded++
		case Noise:
			c.noise = append(c.noise, c.observe(base+int64(i)))
		case Signal:
			c.signal = append(c.signal, c.observe(base+int64(i)))
		}
	}
}

func (c *Comparator) observe(offset int64) Observation {
	vals := make([]byte, c.n)
	copy(vals, c.column)
	return Observation{Offset: offset, Values: vals}
}

func (c *Comparator) Signal() []Observation { return c.signal }
func (c *Comparator) Noise() []Observation  { return c.noise }
func (c *Comparator) Discarded() int64      { return c.discarded }

// Compare classifies every offset in [0, length) across streams, which must
// all hold exactly length bytes. Offsets where all streams agree are dropped.
func Compare(length int64, streams [][]byte) (signal, noise []Observation) {
	c := New(len(streams))
	c.Feed(0, int(length), streams)
	return c.Signal(), c.Noise()
}
