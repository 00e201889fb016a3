// SPDX-License-Identifier: MIT

// Package builder turns a parsed AST into a linked core.Game and generates
// reproducible parity game fixtures.
//
// Build
//
//	Build resolves every successor id to an arena slot. Ids that name no
//	node are dropped from the successor list; this is documented policy,
//	not an error. MaxPriority is the larger of the declared header value
//	and the largest node priority. Build is pure, total and deterministic.
//
//	When an id is declared more than once, the node keeps the slot of its
//	first declaration and the fields of its last one.
//
// Generators
//
//	RandomGame(n, opts...)  seeded random game (requires WithSeed/WithRand)
//	Ring(n)                 deterministic cycle 0 -> 1 -> ... -> n-1 -> 0
//
//	Generators return *parser.AST so fixtures can be serialized, parsed
//	back and built exactly like user input.
//
// Options (functional, resolved into an immutable config; meaningless
// values panic at option construction, algorithms never panic):
//
//	WithSeed(seed)         deterministic *rand.Rand
//	WithRand(r)            caller-provided *rand.Rand
//	WithMaxPriority(p)     priorities drawn from 0..p (default 4)
//	WithOutDegree(d)       1..d successors per node, 0 for dead ends (default 2)
//	WithDangling(p)        probability of an extra successor id with no node
//	WithNames()            name every node "v<id>"
//	WithHeader()           emit a "parity <p>;" header
package builder
