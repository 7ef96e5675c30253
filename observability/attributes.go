package observability

// Attribute keys shared by metrics and spans.
const (
	AttrStage        = "pollkit.stage"
	AttrServiceName  = "service.name"
	AttrVersion      = "service.version"
	AttrEnvironment  = "environment"
	AttrChunks       = "pollkit.chunks"
	AttrOutputs      = "pollkit.outputs"
	AttrErrorMessage = "error.message"
)
