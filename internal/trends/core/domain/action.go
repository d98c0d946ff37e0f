package domain

// Action is a named, reusable set of event-matching rules. The rules
// themselves live with the capture pipeline; at query time events are matched
// to actions through the precalculated action linkage.
type Action struct {
	ID   int64
	Name string
}
