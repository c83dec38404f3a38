package rgatext

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SynchronizedText is the site-level façade: a VectorClock tied to an RGA
// of runes. It is the only type a host application needs to drive one
// replica — produce operations from local edits, and feed remote
// operations back in once the causal-readiness predicate allows it.
//
// SynchronizedText is safe for concurrent use.
type SynchronizedText struct {
	mu  sync.RWMutex
	sid int

	instanceID uuid.UUID
	logger     *logrus.Entry

	clock   *VectorClock
	rga     *RGA[rune]
	applied *siteCounter
}

// New creates a replica with site identity sid, which must be unique
// across every replica in the session and non-negative.
func New(sid int) (*SynchronizedText, error) {
	if sid < 0 {
		return nil, errors.Errorf("rgatext: site id must be non-negative, got %d", sid)
	}
	instanceID := uuid.New()
	return &SynchronizedText{
		sid:        sid,
		instanceID: instanceID,
		logger:     log.WithFields(logrus.Fields{"site": sid, "instance": instanceID}),
		clock:      NewVectorClock(sid),
		rga:        NewRGA[rune](),
		applied:    newSiteCounter(),
	}, nil
}

// GetText returns the concatenation of every non-tombstoned character in
// iteration order.
func (s *SynchronizedText) GetText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elems := s.rga.Iter()
	chars := make([]rune, 0, len(elems))
	for _, e := range elems {
		if e.Live {
			chars = append(chars, e.Value)
		}
	}
	return string(chars)
}

// Positions returns the S4Vector of every node in iteration order,
// including tombstones. This mirrors the original implementation's
// get_positions, useful for hosts that need to address a specific
// character (live or deleted) by position.
func (s *SynchronizedText) Positions() []S4Vector {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elems := s.rga.Iter()
	pos := make([]S4Vector, len(elems))
	for i, e := range elems {
		pos[i] = e.Pos
	}
	return pos
}

// Iter returns a snapshot of every element — position plus live value,
// or a tombstone marker — in iteration order.
func (s *SynchronizedText) Iter() []Element[rune] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rga.Iter()
}

// GetClock returns a read-only snapshot of this replica's vector clock
// values. The returned slice must not be mutated by the caller.
func (s *SynchronizedText) GetClock() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]uint32(nil), s.clock.ClockValues()...)
}

// AppliedCount returns how many operations originating at sid this
// replica has applied so far, whether local (sid == this replica's own id)
// or remote. It is pure telemetry and plays no part in convergence.
func (s *SynchronizedText) AppliedCount(sid int) uint64 {
	return s.applied.value(sid)
}

// LocalInsert performs a local edit: it advances this replica's clock,
// splices character into the RGA after insertAfter, and returns the
// Operation record to broadcast to other replicas.
func (s *SynchronizedText) LocalInsert(insertAfter S4Vector, character rune) (Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock.Increase()
	position := s.clock.ToS4Vector()
	if err := s.rga.Insert(insertAfter, position, character); err != nil {
		return Operation{}, errors.Wrap(err, "rgatext: local insert")
	}
	s.applied.increment(s.sid)

	s.logger.WithFields(logrus.Fields{
		"op":       "local_insert",
		"position": position,
	}).Debug("applied local insert")

	clockValues := append([]uint32(nil), s.clock.ClockValues()...)
	return Operation{
		SentBy:  s.sid,
		OpClock: clockValues,
		Kind:    OpInsert,
		Insert: &InsertData{
			Character:      character,
			InsertAfter:    insertAfter.ToArray(),
			InsertPosition: position.ToArray(),
		},
	}, nil
}

// LocalDelete performs a local delete: it advances this replica's clock,
// tombstones the node at position, and returns the Operation record to
// broadcast to other replicas.
func (s *SynchronizedText) LocalDelete(position S4Vector) Operation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock.Increase()
	s.rga.Delete(position)
	s.applied.increment(s.sid)

	s.logger.WithFields(logrus.Fields{
		"op":       "local_delete",
		"position": position,
	}).Debug("applied local delete")

	clockValues := append([]uint32(nil), s.clock.ClockValues()...)
	return Operation{
		SentBy:  s.sid,
		OpClock: clockValues,
		Kind:    OpDelete,
		Delete:  &DeleteData{Position: position.ToArray()},
	}
}

// IsReadyToReceive reports whether an incoming operation from sentBy
// bearing clock snapshot opClock may be applied right now without
// violating causal order: every entry besides sentBy's own slot must
// already be known to this replica, and sentBy's own slot must be exactly
// one more than what this replica has observed from sentBy so far.
func (s *SynchronizedText) IsReadyToReceive(sentBy int, opClock []uint32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isReadyToReceiveLocked(sentBy, opClock)
}

func (s *SynchronizedText) isReadyToReceiveLocked(sentBy int, opClock []uint32) bool {
	for idx, v := range opClock {
		if idx == sentBy {
			continue
		}
		if v > s.clock.ClockValue(idx) {
			return false
		}
	}
	if sentBy < 0 || sentBy >= len(opClock) {
		return false
	}
	return opClock[sentBy] == s.clock.ClockValue(sentBy)+1
}

// ApplyOperation applies a remote Operation if and only if the
// causal-readiness predicate holds. On success the RGA is mutated and the
// sender's clock snapshot is merged into this replica's clock. On failure
// it returns ErrNotReady and leaves all state untouched — the engine does
// not buffer or reorder; that is the transport's job. Note that the
// predicate also rejects an exact re-delivery of an already-applied
// operation (its own-slot value no longer equals local+1), so the engine
// relies on the transport for exactly-once delivery rather than
// deduplicating itself.
func (s *SynchronizedText) ApplyOperation(op Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isReadyToReceiveLocked(op.SentBy, op.OpClock) {
		s.logger.WithFields(logrus.Fields{
			"sent_by": op.SentBy,
		}).Warn("rejected operation: not ready to receive")
		return ErrNotReady
	}

	switch op.Kind {
	case OpInsert:
		if op.Insert == nil {
			return errors.New("rgatext: insert operation missing payload")
		}
		insertAfter := S4VectorFromArray(op.Insert.InsertAfter)
		position := S4VectorFromArray(op.Insert.InsertPosition)
		if err := s.rga.Insert(insertAfter, position, op.Insert.Character); err != nil {
			return errors.Wrap(err, "rgatext: apply remote insert")
		}
	case OpDelete:
		if op.Delete == nil {
			return errors.New("rgatext: delete operation missing payload")
		}
		s.rga.Delete(S4VectorFromArray(op.Delete.Position))
	default:
		return errors.Errorf("rgatext: unknown operation kind %d", op.Kind)
	}

	s.clock.MergeRemote(op.OpClock)
	s.applied.increment(op.SentBy)

	s.logger.WithFields(logrus.Fields{
		"sent_by": op.SentBy,
	}).Debug("applied remote operation")

	return nil
}
