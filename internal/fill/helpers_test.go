package fill

import (
	"sync"

	"github.com/arloliu/parfill/types"
)

// squareSource is a pure source used across tests.
type squareSource struct{}

func (squareSource) ValueAt(i int) (int, error) {
	return i*i - 3*i + 7, nil
}

// failingSource fails at one index and behaves like squareSource elsewhere.
type failingSource struct {
	at  int
	err error
}

func (s failingSource) ValueAt(i int) (int, error) {
	if i == s.at {
		return 0, s.err
	}

	return squareSource{}.ValueAt(i)
}

// fixedPartitioner returns a preset result regardless of input.
type fixedPartitioner struct {
	parts []types.Partition
	err   error
}

func (p fixedPartitioner) Split(int, int) ([]types.Partition, error) {
	return p.parts, p.err
}

type fillTransition struct {
	state   types.FillState
	workers int
	err     error
}

type taskTransition struct {
	task  int
	part  types.Partition
	state types.TaskState
	err   error
}

// recorder is a thread-safe Observer that keeps every transition.
type recorder struct {
	mu    sync.Mutex
	fills []fillTransition
	tasks []taskTransition

	// doneTerminal is the number of terminal tasks observed when FillDone arrived.
	doneTerminal int
}

func (r *recorder) FillStateChanged(state types.FillState, workers int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fills = append(r.fills, fillTransition{state: state, workers: workers, err: err})
	if state == types.FillDone {
		for _, tt := range r.tasks {
			if tt.state.Terminal() {
				r.doneTerminal++
			}
		}
	}
}

func (r *recorder) TaskStateChanged(task int, p types.Partition, state types.TaskState, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, taskTransition{task: task, part: p, state: state, err: err})
}

func (r *recorder) fillStates() []types.FillState {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.FillState, len(r.fills))
	for i, f := range r.fills {
		out[i] = f.state
	}

	return out
}

// taskStates returns the ordered states seen per task.
func (r *recorder) taskStates() map[int][]types.TaskState {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[int][]types.TaskState)
	for _, tt := range r.tasks {
		out[tt.task] = append(out[tt.task], tt.state)
	}

	return out
}
