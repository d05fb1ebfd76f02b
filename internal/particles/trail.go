package particles

// Trail is a fixed-capacity ring buffer of trail samples ordered newest
// first. Pushing onto a full trail evicts the oldest sample.
type Trail struct {
	buf  []Vertex
	head int
	n    int
}

// NewTrail allocates a trail holding at most capacity samples.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]Vertex, capacity)}
}

// Len reports the number of stored samples.
func (t *Trail) Len() int { return t.n }

// Cap reports the fixed capacity.
func (t *Trail) Cap() int { return len(t.buf) }

// PushFront inserts v as the newest sample, evicting the oldest sample
// when the trail is full.
func (t *Trail) PushFront(v Vertex) {
	t.head--
	if t.head < 0 {
		t.head = len(t.buf) - 1
	}
	t.buf[t.head] = v
	if t.n < len(t.buf) {
		t.n++
	}
}

// ReplaceFront overwrites the newest sample in place without growing the
// trail. On an empty trail it behaves like PushFront.
func (t *Trail) ReplaceFront(v Vertex) {
	if t.n == 0 {
		t.PushFront(v)
		return
	}
	t.buf[t.head] = v
}

// PopBack discards the oldest sample, if any.
func (t *Trail) PopBack() {
	if t.n > 0 {
		t.n--
	}
}

// At returns the i-th sample counting from the newest. i must be in
// [0, Len()).
func (t *Trail) At(i int) Vertex {
	return t.buf[(t.head+i)%len(t.buf)]
}
