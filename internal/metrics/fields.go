package metrics

// Attribute keys shared by the OpenTelemetry instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrKind     = "kind"
	AttrOutcome  = "outcome"
)
