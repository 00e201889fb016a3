// Package strategy implements the lifting strategies of the SPM solver as
// resumable sequences with feedback.
//
// What:
//
//   - Sequence: the request/response protocol. The driver calls
//     Next(progressed) to obtain the next slot to lift, passing whether the
//     previously returned slot progressed. Exactly one feedback value is
//     delivered per produced slot; the argument of the first call is
//     ignored. ok == false ends the sequence.
//   - Strategies (func(*core.Game, []int) Sequence):
//   - Cycle:    scan the list round-robin.
//   - Repeat:   re-lift each node while it keeps progressing.
//   - Adaptive: move a failing node to the back and restart from the head.
//   - Graph:    after a success, lift predecessors breadth-first and
//     repeat any cycle that leads back to the starting node.
//   - Grouped(inner): run inner per priority bucket, highest first,
//     round after round until a round makes no progress.
//   - Compose(order, strategy): the Factory handed to the solver.
//
// Halting rule:
//
//	Every strategy stops after len(list) consecutive failed visits, and an
//	empty list yields no slot at all. Grouped stops after a full round of
//	buckets in which no lift progressed.
//
// Concurrency:
//
//	Strategy bodies run as coroutines (iter.Pull). The caller and the body
//	never run at the same time; a Sequence must not be shared between
//	goroutines. Call Stop when abandoning a Sequence before it ends.
package strategy
