// Package workers runs the client's background loops. The only worker the
// application registers today is the periodic sync job, but the aggregate
// keeps room for future loops (retry sweeps, log shipping) without
// touching the client bootstrap.
package workers

// Worker is one background loop. Run is expected to return quickly after
// kicking off its goroutines; the sync job, for example, starts its ticker
// and returns.
type Worker interface {
	Run()
}
