package canvas

// FrameScheduler asks the host to run one redraw at the next display
// refresh.
type FrameScheduler interface {
	RequestFrame()
}

// FrameQueue is a FrameScheduler for hosts that own their refresh loop.
// Requests made between two refreshes coalesce into one.
type FrameQueue struct {
	c chan struct{}
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{c: make(chan struct{}, 1)}
}

// RequestFrame never blocks.
func (q *FrameQueue) RequestFrame() {
	select {
	case q.c <- struct{}{}:
	default:
		// a frame is already pending
	}
}

// Frames is drained by the refresh loop, one receive per redraw.
func (q *FrameQueue) Frames() <-chan struct{} {
	return q.c
}

// Pending reports whether a frame was requested and consumes the request.
func (q *FrameQueue) Pending() bool {
	select {
	case <-q.c:
		return true
	default:
		return false
	}
}
