// Implements the TruckQueue, the FIFO wait-list in front of a loader or scale.

package sim

import (
	"fmt"
	"strings"
)

// TruckQueue is a FIFO queue of truck identifiers waiting for a resource.
type TruckQueue struct {
	queue []int
}

// Enqueue adds a truck to the back of the queue.
func (tq *TruckQueue) Enqueue(truckID int) {
	tq.queue = append(tq.queue, truckID)
}

// Dequeue removes the truck at the front of the queue.
// ok is false if the queue is empty.
func (tq *TruckQueue) Dequeue() (truckID int, ok bool) {
	if len(tq.queue) == 0 {
		return 0, false
	}
	truckID = tq.queue[0]
	tq.queue = tq.queue[1:]
	return truckID, true
}

// Len returns the number of trucks waiting.
func (tq *TruckQueue) Len() int {
	return len(tq.queue)
}

// Contains reports whether truckID is waiting in the queue.
func (tq *TruckQueue) Contains(truckID int) bool {
	for _, id := range tq.queue {
		if id == truckID {
			return true
		}
	}
	return false
}

// Items returns the waiting truck IDs, front first.
// The returned slice is internal storage and MUST NOT be modified.
func (tq *TruckQueue) Items() []int {
	return tq.queue
}

func (tq *TruckQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, id := range tq.queue {
		sb.WriteString(fmt.Sprint(id))
		if i < len(tq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
