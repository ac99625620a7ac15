package master

import "fmt"

// AssignmentState tracks one chunk-to-worker pairing through its life.
type AssignmentState int

const (
	AssignmentPending AssignmentState = iota
	AssignmentInFlight
	AssignmentCompleted
	AssignmentLost
)

func (s AssignmentState) String() string {
	switch s {
	case AssignmentPending:
		return "pending"
	case AssignmentInFlight:
		return "in-flight"
	case AssignmentCompleted:
		return "completed"
	case AssignmentLost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Assignment records which worker currently owns, or last owned, a chunk.
// A chunk may accumulate several Lost assignments across rounds, but holds
// at most one active (Pending or InFlight) assignment at a time and reaches
// Completed at most once.
type Assignment struct {
	ChunkID     int
	WorkerID    uint32
	State       AssignmentState
	RoundIssued int

	pending *PendingReceive // armed receive while in flight
}

// assignmentTable is the dispatcher's single source of truth for chunk
// bookkeeping. Single-writer: only the dispatcher's control loop touches it,
// so it needs no lock.
type assignmentTable struct {
	numChunks int
	active    map[int]*Assignment // chunkID -> current non-Lost assignment
	results   map[int][]int32     // chunkID -> decoded elements, set once
	lost      []*Assignment       // history across rounds
}

func newAssignmentTable(numChunks int) *assignmentTable {
	return &assignmentTable{
		numChunks: numChunks,
		active:    make(map[int]*Assignment, numChunks),
		results:   make(map[int][]int32, numChunks),
	}
}

// create opens a Pending assignment for a chunk. It panics if the chunk
// already has an active assignment or a recorded result; both would break
// the at-most-one-active invariant.
func (t *assignmentTable) create(chunkID int, workerID uint32, round int) *Assignment {
	if _, ok := t.active[chunkID]; ok {
		panic(fmt.Sprintf("chunk %d already has an active assignment", chunkID))
	}
	if _, ok := t.results[chunkID]; ok {
		panic(fmt.Sprintf("chunk %d already completed", chunkID))
	}
	a := &Assignment{
		ChunkID:     chunkID,
		WorkerID:    workerID,
		State:       AssignmentPending,
		RoundIssued: round,
	}
	t.active[chunkID] = a
	return a
}

// markInFlight records that the chunk is on the wire with a receive armed.
func (t *assignmentTable) markInFlight(a *Assignment, pending *PendingReceive) {
	a.State = AssignmentInFlight
	a.pending = pending
}

// markLost retires an assignment whose reply will never be applied. The
// chunk re-enters the unassigned pool.
func (t *assignmentTable) markLost(a *Assignment) {
	a.State = AssignmentLost
	a.pending = nil
	t.lost = append(t.lost, a)
	delete(t.active, a.ChunkID)
}

// complete records the chunk's final result. First completion wins; the
// assignment is retired either way.
func (t *assignmentTable) complete(a *Assignment, elems []int32) {
	if _, ok := t.results[a.ChunkID]; ok {
		// Already completed by another worker; discard the late result.
		t.markLost(a)
		return
	}
	a.State = AssignmentCompleted
	a.pending = nil
	t.results[a.ChunkID] = elems
	delete(t.active, a.ChunkID)
}

// completed reports whether the chunk has a recorded result.
func (t *assignmentTable) completed(chunkID int) bool {
	_, ok := t.results[chunkID]
	return ok
}

// remaining counts chunks that still lack a result.
func (t *assignmentTable) remaining() int {
	return t.numChunks - len(t.results)
}

// unassigned lists every chunk with neither a result nor an active
// assignment, ascending.
func (t *assignmentTable) unassigned() []int {
	var out []int
	for id := 0; id < t.numChunks; id++ {
		if t.completed(id) {
			continue
		}
		if _, ok := t.active[id]; ok {
			continue
		}
		out = append(out, id)
	}
	return out
}

// missing lists every chunk without a result, ascending. Used for the
// exhaustion report.
func (t *assignmentTable) missing() []int {
	var out []int
	for id := 0; id < t.numChunks; id++ {
		if !t.completed(id) {
			out = append(out, id)
		}
	}
	return out
}

// assemble concatenates the recorded results in chunkID order. It fails if
// any chunk is missing; a silently truncated dataset is never returned.
func (t *assignmentTable) assemble() ([]int32, error) {
	var out []int32
	for id := 0; id < t.numChunks; id++ {
		elems, ok := t.results[id]
		if !ok {
			return nil, fmt.Errorf("chunk %d has no recorded result", id)
		}
		out = append(out, elems...)
	}
	return out, nil
}
