package tracing

// Span attribute keys.
const (
	AttrSessionID   = "session.id"
	AttrCommandText = "command.text"
	AttrFilePath    = "file.path"
	AttrFileBytes   = "file.bytes"
	AttrFileExists  = "file.exists"
)

// Span name prefixes.
const (
	SpanPrefixCommand = "command."
	SpanPrefixStorage = "storage."
)

// Span event names.
const (
	EventUnknownCommand = "command.unknown"
	EventFileMissing    = "file.missing"
)
