package input

// Queue buffers events between two frames. Host callbacks push, the main
// loop drains once per frame. Not safe for concurrent use: GLFW delivers
// callbacks on the thread that polls events.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 64)}
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *Queue) Len() int {
	return len(q.events)
}

// Drain calls fn for every buffered event in arrival order and empties the
// queue. Events pushed from inside fn are delivered in the same drain.
func (q *Queue) Drain(fn func(Event)) {
	for i := 0; i < len(q.events); i++ {
		fn(q.events[i])
		q.events[i] = nil
	}
	q.events = q.events[:0]
}
