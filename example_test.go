// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package bbq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/bbq"
	"code.hybscloud.com/iox"
)

// ExampleNewQueue demonstrates basic non-blocking enqueue and dequeue.
func ExampleNewQueue() {
	// 4 blocks of 4 slots each
	q := bbq.NewQueue[int](16, 4)

	for i := 1; i <= 3; i++ {
		v := i * 10
		if err := q.Enqueue(&v); err != nil {
			fmt.Println("full:", err)
		}
	}

	for {
		v, err := q.Dequeue()
		if err != nil {
			break // empty
		}
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
}

// ExampleNew demonstrates the builder API.
func ExampleNew() {
	q := bbq.Build[string](bbq.New(1024).Blocks(16))

	fmt.Println(q.Cap(), q.Blocks(), q.BlockCap())

	// Output:
	// 1024 16 64
}

// ExampleQueue_Enqueue demonstrates a producer/consumer pipeline with
// adaptive backoff on both ends.
func ExampleQueue_Enqueue() {
	q := bbq.NewQueue[int](8, 2)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 1; i <= 5; i++ {
			v := i
			for q.Enqueue(&v) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	backoff := iox.Backoff{}
	for received := 0; received < 5; {
		v, err := q.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		fmt.Println(v)
		received++
	}
	wg.Wait()

	// Output:
	// 1
	// 2
	// 3
	// 4
	// 5
}

// ExampleIsWouldBlock demonstrates error classification.
func ExampleIsWouldBlock() {
	q := bbq.NewQueue[int](4, 2)

	_, err := q.Dequeue()
	fmt.Println(bbq.IsWouldBlock(err))
	fmt.Println(bbq.IsNonFailure(err))

	// Output:
	// true
	// true
}
