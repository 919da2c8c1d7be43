package queue_test

import (
	"fmt"

	"github.com/katalvlaran/strata/queue"
)

// ExampleQueue shows FIFO order: what goes in first comes out first.
func ExampleQueue() {
	q := queue.New(1, 2, 3)
	q = q.Enqueue(4)
	fmt.Println(q.Slice())

	front, rest, _ := q.Dequeue()
	fmt.Println(front, rest.Slice())
	// Output:
	// [1 2 3 4]
	// 1 [2 3 4]
}
