package rgatext

// VectorClock tracks, from the perspective of a single site, that site's own
// progress and its knowledge of every other known site's progress.
//
// A VectorClock is not safe for concurrent use; SynchronizedText provides
// the locking a multi-goroutine host needs around it.
type VectorClock struct {
	sid   int
	clock []uint32
}

// NewVectorClock creates a zeroed clock for site sid, long enough to hold
// sid's own slot.
func NewVectorClock(sid int) *VectorClock {
	return &VectorClock{
		sid:   sid,
		clock: make([]uint32, sid+1),
	}
}

// NewVectorClockFromParts reconstructs a clock from a known site id and an
// already-observed set of counters, e.g. when decoding a remote snapshot.
func NewVectorClockFromParts(sid int, values []uint32) *VectorClock {
	clock := make([]uint32, len(values))
	copy(clock, values)
	if len(clock) < sid+1 {
		extended := make([]uint32, sid+1)
		copy(extended, clock)
		clock = extended
	}
	return &VectorClock{sid: sid, clock: clock}
}

// ID returns the site identity this clock belongs to.
func (v *VectorClock) ID() int {
	return v.sid
}

// Increase bumps this site's own counter by one.
func (v *VectorClock) Increase() {
	v.clock[v.sid]++
}

// MergeRemote takes the pointwise maximum of v's counters and values,
// extending v with any tail values beyond its current length. v never
// shrinks.
func (v *VectorClock) MergeRemote(values []uint32) {
	n := len(v.clock)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		if values[i] > v.clock[i] {
			v.clock[i] = values[i]
		}
	}
	if len(values) > len(v.clock) {
		v.clock = append(v.clock, values[len(v.clock):]...)
	}
}

// ClockValue returns the counter for site i, or 0 if i is out of range.
func (v *VectorClock) ClockValue(i int) uint32 {
	if i < 0 || i >= len(v.clock) {
		return 0
	}
	return v.clock[i]
}

// ClockValues returns a read-only view of the full vector. Callers must not
// mutate the returned slice.
func (v *VectorClock) ClockValues() []uint32 {
	return v.clock
}

// ToS4Vector projects the current clock state to an S4Vector snapshot:
// sid is this clock's site, seq is this site's own counter, and sum is the
// sum of every counter in the vector.
func (v *VectorClock) ToS4Vector() S4Vector {
	var sum uint32
	for _, c := range v.clock {
		sum += c
	}
	return S4Vector{
		SSN: 0,
		SID: uint32(v.sid),
		Sum: sum,
		Seq: v.clock[v.sid],
	}
}
