package interfaces

// Shuffler randomizes which repositories a run picks for remediation and
// dependency graph integration. *math/rand/v2.Rand satisfies it, so tests
// can pass a seeded source.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}
