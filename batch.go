package boxblur

// Batch is an ordered sequence of owned PixelBuffers, one slot per image.
//
// A Batch owns every buffer stored in it. Replacing or releasing a slot
// releases the previous occupant, and ReleaseAll drops whatever is left, so
// an early return only needs a single deferred ReleaseAll to guarantee that
// every buffer is released exactly once.
//
// A Batch is not safe for concurrent use.
type Batch struct {
	slots []*PixelBuffer
}

// NewBatch creates an empty batch with room for capacity buffers.
func NewBatch(capacity int) *Batch {
	return &Batch{
		slots: make([]*PixelBuffer, 0, max(capacity, 0)),
	}
}

// Append takes ownership of b and stores it in a new slot at the end.
func (s *Batch) Append(b *PixelBuffer) {
	s.slots = append(s.slots, b)
}

// Len returns the number of slots, occupied or not.
func (s *Batch) Len() int {
	return len(s.slots)
}

// At returns the buffer in slot i, or nil if the slot has been released.
func (s *Batch) At(i int) *PixelBuffer {
	return s.slots[i]
}

// Replace releases the buffer in slot i and stores b in its place.
func (s *Batch) Replace(i int, b *PixelBuffer) {
	old := s.slots[i]
	s.slots[i] = b
	if old != b {
		old.Release()
	}
}

// Release releases the buffer in slot i and leaves the slot empty.
func (s *Batch) Release(i int) {
	s.slots[i].Release()
	s.slots[i] = nil
}

// ReleaseAll releases every occupied slot. It is safe to call repeatedly.
func (s *Batch) ReleaseAll() {
	for i := range s.slots {
		s.Release(i)
	}
}

// Live returns the number of occupied slots.
func (s *Batch) Live() int {
	n := 0
	for _, b := range s.slots {
		if b != nil {
			n++
		}
	}
	return n
}
