// SPDX-License-Identifier: MIT
//
// File: coroutine.go
// Role: Adapts a push-style strategy body to the pull-style Sequence.
//
// A body receives a visit function. visit(slot) suspends the body, hands
// slot to the caller of Next, and resumes with the feedback passed to the
// following Next call. visit returns alive == false once the Sequence has
// been stopped; the body must return promptly in that case.

package strategy

import "iter"

// visitFunc suspends the body on slot and returns its lift outcome.
type visitFunc func(slot int) (progressed, alive bool)

// body is a strategy loop written against visitFunc.
type body func(visit visitFunc)

// coroutine implements Sequence on top of iter.Pull.
type coroutine struct {
	next     func() (int, bool)
	stop     func()
	feedback bool
	done     bool
}

// run starts b lazily; for an empty list the Sequence ends immediately.
func run(list []int, b body) Sequence {
	if len(list) == 0 {
		return &coroutine{done: true, stop: func() {}}
	}

	c := &coroutine{}
	seq := func(yield func(int) bool) {
		b(func(slot int) (bool, bool) {
			if !yield(slot) {
				return false, false
			}
			return c.feedback, true
		})
	}
	c.next, c.stop = iter.Pull(seq)
	return c
}

func (c *coroutine) Next(progressed bool) (int, bool) {
	if c.done {
		return 0, false
	}
	c.feedback = progressed
	slot, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
	}
	return slot, ok
}

func (c *coroutine) Stop() {
	c.done = true
	c.stop()
}

// failCounter tracks consecutive failed visits against a limit.
type failCounter struct {
	count, limit int
}

// observe records one visit outcome and reports whether the limit is hit.
func (f *failCounter) observe(progressed bool) bool {
	if progressed {
		f.count = 0
		return false
	}
	f.count++
	return f.count >= f.limit
}
