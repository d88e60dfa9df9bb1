//
//  Copyright © Opsrig Inc. All rights reserved.
//

// Package service exposes the script output validator over HTTP.
//
// The service accepts raw script output plus a mode selector, runs the
// parser from [github.com/opsrig/scriptout/pkg/scriptoutput], and
// returns the annotated result as a validation record. Recent records
// are retained in memory and can be replayed by id.
package service

import (
	"time"

	"github.com/opsrig/scriptout/pkg/scriptoutput"
)

// ValidationRequest is the body of POST /v1/validations.
type ValidationRequest struct {
	// Mode is one of "ad", "collection" or "batchcollection".
	Mode string `json:"mode"`
	// Output is the raw text produced by executing the script.
	Output string `json:"output"`
}

// ValidationRecord is the stored, replayable outcome of one validation.
// Exactly one of Instances or Datapoints is populated, matching Mode.
type ValidationRecord struct {
	ID            string                             `json:"id"`
	Mode          scriptoutput.Mode                  `json:"mode"`
	CreatedAt     time.Time                          `json:"createdAt"`
	Summary       scriptoutput.Summary               `json:"summary"`
	Instances     []scriptoutput.ADInstance          `json:"instances,omitempty"`
	Datapoints    []scriptoutput.CollectionDatapoint `json:"datapoints,omitempty"`
	UnparsedLines []scriptoutput.UnparsedLine        `json:"unparsedLines"`
}

// newRecord assembles a ValidationRecord from a parse result. The
// result is never nil here; freeform mode is rejected before parsing.
func newRecord(id string, result scriptoutput.ParseResult, now time.Time) *ValidationRecord {
	record := &ValidationRecord{
		ID:            id,
		Mode:          result.OutputMode(),
		CreatedAt:     now,
		Summary:       result.Totals(),
		UnparsedLines: result.UnparsedLines(),
	}

	switch r := result.(type) {
	case *scriptoutput.ADResult:
		record.Instances = r.Instances
	case *scriptoutput.CollectionResult:
		record.Datapoints = r.Datapoints
	}
	return record
}
