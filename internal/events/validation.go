package events

import "time"

// ValidationStart is emitted before a schema is validated.
type ValidationStart struct {
	Types      int
	Directives int
}

// ValidationFinish is emitted after a schema is validated. Cached is set when
// the result came from an earlier run.
type ValidationFinish struct {
	Diagnostics int
	Cached      bool
	Duration    time.Duration
}

// SchemaLoaded is emitted after schema sources are parsed and built.
type SchemaLoaded struct {
	Files    int
	Duration time.Duration
	Err      error
}
