package runtime

import (
	"sync"

	"github.com/ernesto/pkmbridge/internal/scene"
)

// ButtonQueue is the sole channel from the services thread to the emulator
// loop: a mutex-protected FIFO of pending button presses. Scenes enqueue
// (the bus's command listener hands commands to the active scene, not
// buttons to this queue); only the emulator loop dequeues.
type ButtonQueue struct {
	mu    sync.Mutex
	items []scene.Button
}

// NewButtonQueue returns an empty queue.
func NewButtonQueue() *ButtonQueue {
	return &ButtonQueue{}
}

// Enqueue appends btn to the back of the queue.
func (q *ButtonQueue) Enqueue(btn scene.Button) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, btn)
}

// PopOrNone removes and returns the front button, or false if the queue is
// empty.
func (q *ButtonQueue) PopOrNone() (scene.Button, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return scene.Pass, false
	}
	btn := q.items[0]
	q.items = q.items[1:]
	return btn, true
}

// QueueLen reports how many buttons are pending, satisfying scene.ButtonSink.
func (q *ButtonQueue) QueueLen() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear discards every pending button. Called at shutdown: in-flight
// commands are not cancelled, but anything still queued is dropped.
func (q *ButtonQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}
