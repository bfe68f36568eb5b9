package model

import "time"

// RawDocument is the menu page produced by connectors and consumed by the engine.
type RawDocument struct {
	FetchedAt time.Time
	Source    string // provider name (e.g. "campusdish", "file")
	URI       string // where the document was read from
	HTML      string // original markup
}
