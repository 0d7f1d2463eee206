package port

type Throttler interface {
	// Allow reports whether the author may run another command right now.
	Allow(authorID string) bool
}
