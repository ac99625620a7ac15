package master

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentLifecycle(t *testing.T) {
	table := newAssignmentTable(3)
	require.Equal(t, 3, table.remaining())
	require.Equal(t, []int{0, 1, 2}, table.unassigned())

	a := table.create(1, 7, 0)
	require.Equal(t, AssignmentPending, a.State)
	require.Equal(t, []int{0, 2}, table.unassigned())

	table.markInFlight(a, newPendingReceive())
	require.Equal(t, AssignmentInFlight, a.State)

	table.complete(a, []int32{10, 20, 30})
	require.Equal(t, AssignmentCompleted, a.State)
	require.True(t, table.completed(1))
	require.Equal(t, 2, table.remaining())
	require.Equal(t, []int{0, 2}, table.missing())
}

func TestLostChunkBecomesUnassignedAgain(t *testing.T) {
	table := newAssignmentTable(2)
	a := table.create(0, 1, 0)
	table.markInFlight(a, newPendingReceive())
	table.markLost(a)

	require.Equal(t, AssignmentLost, a.State)
	require.Equal(t, []int{0, 1}, table.unassigned())
	require.False(t, table.completed(0))

	// The chunk can be reissued to a different worker in a later round.
	b := table.create(0, 2, 1)
	table.complete(b, []int32{0})
	require.True(t, table.completed(0))
}

func TestFirstCompletionWins(t *testing.T) {
	table := newAssignmentTable(1)
	a := table.create(0, 1, 0)
	table.complete(a, []int32{1, 2})

	b := &Assignment{ChunkID: 0, WorkerID: 2, State: AssignmentInFlight}
	table.complete(b, []int32{9, 9})

	require.Equal(t, AssignmentLost, b.State)
	out, err := table.assemble()
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2}, out)
}

func TestDoubleActiveAssignmentPanics(t *testing.T) {
	table := newAssignmentTable(1)
	table.create(0, 1, 0)
	require.Panics(t, func() { table.create(0, 2, 0) })
}

func TestAssembleRefusesMissingChunks(t *testing.T) {
	table := newAssignmentTable(2)
	a := table.create(0, 1, 0)
	table.complete(a, []int32{5})

	_, err := table.assemble()
	require.Error(t, err)
}

func TestAssembleOrdersByChunkID(t *testing.T) {
	table := newAssignmentTable(3)
	for _, id := range []int{2, 0, 1} {
		a := table.create(id, 1, 0)
		table.complete(a, []int32{int32(id * 10), int32(id*10 + 1)})
	}
	out, err := table.assemble()
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1, 10, 11, 20, 21}, out)
}

func TestAssignmentStateString(t *testing.T) {
	require.Equal(t, "pending", AssignmentPending.String())
	require.Equal(t, "in-flight", AssignmentInFlight.String())
	require.Equal(t, "completed", AssignmentCompleted.String())
	require.Equal(t, "lost", AssignmentLost.String())
}
