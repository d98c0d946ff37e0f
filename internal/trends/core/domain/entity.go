package domain

type EntityType string

const (
	EntityActions EntityType = "actions"
	EntityEvents  EntityType = "events"
)

// DisplayMode selects how an entity's aggregate is computed.
type DisplayMode string

const (
	ShownAsVolume     DisplayMode = "Volume"
	ShownAsStickiness DisplayMode = "Stickiness"
)

// MathMode selects what a count counts.
type MathMode string

const (
	// MathTotal counts raw matching events.
	MathTotal MathMode = "total"
	// MathDAU counts distinct active persons per grouping key.
	MathDAU MathMode = "dau"
)

// EntityRef identifies the entity a result belongs to: an action (numeric id)
// or a raw event name (the name doubles as the id).
type EntityRef struct {
	ID   string
	Name string
	Type EntityType
}
