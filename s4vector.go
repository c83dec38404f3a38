package rgatext

import "fmt"

// S4Vector is a 4-field timestamp that uniquely identifies every insertion
// and furnishes the total order used to resolve concurrent inserts.
//
// SSN is a reserved session field, currently always zero. SID identifies
// the originating site. Sum is the sum of all entries in the originating
// site's vector clock at the moment the vector was produced. Seq is the
// originating site's own counter at that moment.
type S4Vector struct {
	SSN uint32
	SID uint32
	Sum uint32
	Seq uint32
}

// RootS4Vector is the permanent sentinel head of every RGA. No real edit
// ever produces this value.
var RootS4Vector = S4Vector{}

// Less reports whether s sorts strictly before other under the total order
// (ssn, sum, sid, seq), lexicographic in that field precedence. Note that
// sum is compared before sid; this gives Lamport-clock-like ordering by
// causal weight first, site identity as tie-break second, and seq is
// reached only when every other field ties.
func (s S4Vector) Less(other S4Vector) bool {
	if s.SSN != other.SSN {
		return s.SSN < other.SSN
	}
	if s.Sum != other.Sum {
		return s.Sum < other.Sum
	}
	if s.SID != other.SID {
		return s.SID < other.SID
	}
	return s.Seq < other.Seq
}

// Greater reports whether s sorts strictly after other under the same
// total order as Less.
func (s S4Vector) Greater(other S4Vector) bool {
	return other.Less(s)
}

// Equal reports whether s and other carry identical fields.
func (s S4Vector) Equal(other S4Vector) bool {
	return s == other
}

// ToArray encodes s in the wire order fixed by spec: [ssn, sid, sum, seq].
func (s S4Vector) ToArray() [4]uint32 {
	return [4]uint32{s.SSN, s.SID, s.Sum, s.Seq}
}

// S4VectorFromArray decodes an S4Vector from its wire encoding
// [ssn, sid, sum, seq].
func S4VectorFromArray(a [4]uint32) S4Vector {
	return S4Vector{SSN: a[0], SID: a[1], Sum: a[2], Seq: a[3]}
}

// String renders s for logging and test failure messages.
func (s S4Vector) String() string {
	return fmt.Sprintf("S4(%d,%d,%d,%d)", s.SSN, s.SID, s.Sum, s.Seq)
}
