// Package schedule provides a deferred-task scheduler driven by the game clock.
//
// The scheduler owns a virtual clock that only moves when Advance is called,
// so deferred work runs on the same goroutine as the frame that advanced it.
// Tasks can be cancelled individually or as a Group, which is how a session
// makes sure none of its pending work outlives it.
package schedule

import (
	"container/heap"
	"time"
)

// Task is a unit of deferred work
type Task struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
	owner     *Scheduler
}

// Cancel prevents the task from running. Cancelling a task that already ran
// or was already cancelled does nothing.
func (t *Task) Cancel() {
	if t == nil || t.cancelled || t.fired {
		return
	}
	t.cancelled = true
	if t.owner != nil {
		t.owner.pending--
	}
}

// Pending reports whether the task is still waiting to run
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Due returns the clock time the task is scheduled for
func (t *Task) Due() time.Duration {
	return t.due
}

// Scheduler runs tasks in due-time order as its clock is advanced.
// Tasks with the same due time run in the order they were scheduled.
// Not safe for concurrent use.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	queue   taskQueue
	pending int
}

// New creates a scheduler with its clock at zero
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current clock time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks that are waiting to run
func (s *Scheduler) Pending() int {
	return s.pending
}

// After schedules fn to run once the clock has advanced by delay.
// A negative delay is treated as zero; the task still waits for the next Advance.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Task{
		due:   s.now + delay,
		seq:   s.seq,
		fn:    fn,
		owner: s,
	}
	heap.Push(&s.queue, t)
	s.pending++
	return t
}

// Advance moves the clock forward by dt and runs every task that became due,
// including tasks scheduled by other tasks during this call. Returns the
// number of tasks that ran.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	ran := 0

	for s.queue.Len() > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*Task)
		if t.cancelled {
			continue
		}
		s.now = t.due
		t.fired = true
		s.pending--
		if t.fn != nil {
			t.fn()
		}
		ran++
	}

	s.now = target
	return ran
}

// NewGroup creates a group of tasks that can be cancelled together
func (s *Scheduler) NewGroup() *Group {
	return &Group{sched: s}
}

// Group schedules tasks on a Scheduler and cancels all of them at once.
// Once cancelled a group stays closed and refuses new work.
type Group struct {
	sched  *Scheduler
	tasks  []*Task
	closed bool
}

// After schedules fn on the underlying scheduler as part of this group.
// On a closed group it returns an already-cancelled task.
func (g *Group) After(delay time.Duration, fn func()) *Task {
	if g.closed {
		return &Task{cancelled: true}
	}
	t := g.sched.After(delay, fn)
	g.tasks = append(g.tasks, t)
	return t
}

// Cancel cancels every pending task of the group and closes it
func (g *Group) Cancel() {
	for _, t := range g.tasks {
		t.Cancel()
	}
	g.tasks = nil
	g.closed = true
}

// Closed reports whether the group has been cancelled
func (g *Group) Closed() bool {
	return g.closed
}

// Pending returns the number of the group's tasks still waiting to run
func (g *Group) Pending() int {
	n := 0
	for _, t := range g.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

// taskQueue is a min-heap ordered by due time, then scheduling order
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*Task))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
