package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrKind     = "kind"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
)
