package move

// Queue is the per-tick mailbox between cause generators and the resolver
// Single-threaded by construction: generators push, then the resolver drains
type Queue struct {
	requests []Request
}

// NewQueue creates an empty request queue
func NewQueue() *Queue {
	return &Queue{requests: make([]Request, 0, 8)}
}

// Push appends a request in generation order
func (q *Queue) Push(r Request) {
	q.requests = append(q.requests, r)
}

// Drain returns all pending requests in FIFO order and empties the queue
func (q *Queue) Drain() []Request {
	if len(q.requests) == 0 {
		return nil
	}
	out := q.requests
	q.requests = make([]Request, 0, cap(out))
	return out
}

// Len returns pending request count
func (q *Queue) Len() int {
	return len(q.requests)
}

// Clear discards pending requests
func (q *Queue) Clear() {
	q.requests = q.requests[:0]
}
