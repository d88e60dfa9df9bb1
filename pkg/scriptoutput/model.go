//
//  Copyright © Opsrig Inc. All rights reserved.
//

// Package scriptoutput parses and validates the raw text produced by
// executing a collection script against a remote device.
//
// Three wire formats are understood, selected by [Mode]:
//
//   - Active Discovery: "id##name##description####key=value&key=value"
//   - Collection: "datapoint=value"
//   - BatchCollection: "wildvalue.datapoint=value"
//
// Parsing is a single pure transformation: [Parse] never fails and never
// stops early. Malformed lines become [UnparsedLine] entries, and value
// constraint violations become [ValidationIssue] annotations on the
// record that carried them. Callers gate on [Summary].Errors or the
// [HasErrors] helper.
//
// # Key Types
//
//   - [ParseResult]: tagged union over [ADResult] and [CollectionResult]
//   - [ADInstance]: one discovered monitoring instance
//   - [CollectionDatapoint]: one metric reading
//   - [ValidationIssue]: a severity-tagged, per-line annotation
package scriptoutput

// Mode selects the wire format an output string is parsed under.
type Mode string

// Supported script output modes.
const (
	ModeActiveDiscovery Mode = "ad"
	ModeCollection      Mode = "collection"
	ModeBatchCollection Mode = "batchcollection"
	ModeFreeform        Mode = "freeform"
)

// ParseMode converts a user-supplied mode string into a [Mode].
// The boolean result is false for anything outside the closed set.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeActiveDiscovery, ModeCollection, ModeBatchCollection, ModeFreeform:
		return Mode(s), true
	}
	return "", false
}

// Severity classifies a [ValidationIssue]. Error-severity issues mark a
// record invalid; Warning and Info are advisory only.
type Severity string

// Issue severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationIssue is a non-fatal annotation attached to a parsed record
// describing a constraint violation. Issues are created exclusively by
// the parsers in this package and are immutable once recorded.
type ValidationIssue struct {
	Severity   Severity `json:"severity" yaml:"severity"`
	Message    string   `json:"message" yaml:"message"`
	LineNumber int      `json:"lineNumber" yaml:"lineNumber"` // 1-based, matches the input line
	Field      string   `json:"field,omitempty" yaml:"field,omitempty"`
}

// ADInstance represents one Active Discovery instance line.
type ADInstance struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Issues      []ValidationIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
	LineNumber  int               `json:"lineNumber" yaml:"lineNumber"`
	RawLine     string            `json:"rawLine" yaml:"rawLine"`
}

// CollectionDatapoint represents one Collection or BatchCollection
// output line. Value is nil when the value text did not parse as a
// number; RawValue always retains the verbatim text.
type CollectionDatapoint struct {
	Name       string            `json:"name" yaml:"name"`
	Value      *float64          `json:"value" yaml:"value"`
	RawValue   string            `json:"rawValue" yaml:"rawValue"`
	Wildvalue  string            `json:"wildvalue,omitempty" yaml:"wildvalue,omitempty"` // batch mode only
	Issues     []ValidationIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
	LineNumber int               `json:"lineNumber" yaml:"lineNumber"`
	RawLine    string            `json:"rawLine" yaml:"rawLine"`
}

// UnparsedLine records a source line excluded from record parsing
// entirely, with a fixed classification string. Blank lines are dropped
// silently and never recorded.
type UnparsedLine struct {
	LineNumber int    `json:"lineNumber" yaml:"lineNumber"`
	Content    string `json:"content" yaml:"content"`
	Reason     string `json:"reason" yaml:"reason"`
}

// Fixed UnparsedLine reason strings.
const (
	ReasonComment       = "Comment line"
	ReasonNotAD         = "Does not match AD format (missing ## delimiter)"
	ReasonNotCollection = "Does not match collection format (missing = delimiter)"
)

// Summary holds the derived per-parse totals. It is recomputed fresh on
// every parse, never incrementally patched.
type Summary struct {
	Total    int `json:"total" yaml:"total"`       // record count
	Valid    int `json:"valid" yaml:"valid"`       // records with zero Error-severity issues
	Errors   int `json:"errors" yaml:"errors"`     // Error-severity issues across all records
	Warnings int `json:"warnings" yaml:"warnings"` // Warning-severity issues across all records
}

// ParseResult is the tagged union produced by [Parse]. The concrete type
// is *[ADResult] for Active Discovery output and *[CollectionResult] for
// Collection and BatchCollection output; consumers switch on the
// concrete type (or call [Parse] result's OutputMode) to branch.
type ParseResult interface {
	// OutputMode reports which mode the result was parsed under.
	OutputMode() Mode
	// Totals returns the derived summary.
	Totals() Summary
	// UnparsedLines returns the lines excluded from record parsing.
	UnparsedLines() []UnparsedLine

	isParseResult()
}

// ADResult is the [ParseResult] for Active Discovery output.
type ADResult struct {
	Instances []ADInstance   `json:"instances" yaml:"instances"`
	Unparsed  []UnparsedLine `json:"unparsedLines" yaml:"unparsedLines"`
	Summary   Summary        `json:"summary" yaml:"summary"`
}

// OutputMode implements [ParseResult].
func (r *ADResult) OutputMode() Mode { return ModeActiveDiscovery }

// Totals implements [ParseResult].
func (r *ADResult) Totals() Summary { return r.Summary }

// UnparsedLines implements [ParseResult].
func (r *ADResult) UnparsedLines() []UnparsedLine { return r.Unparsed }

func (r *ADResult) isParseResult() {}

// CollectionResult is the [ParseResult] for Collection and
// BatchCollection output. Mode distinguishes the two.
type CollectionResult struct {
	Mode       Mode                  `json:"mode" yaml:"mode"`
	Datapoints []CollectionDatapoint `json:"datapoints" yaml:"datapoints"`
	Unparsed   []UnparsedLine        `json:"unparsedLines" yaml:"unparsedLines"`
	Summary    Summary               `json:"summary" yaml:"summary"`
}

// OutputMode implements [ParseResult].
func (r *CollectionResult) OutputMode() Mode { return r.Mode }

// Totals implements [ParseResult].
func (r *CollectionResult) Totals() Summary { return r.Summary }

// UnparsedLines implements [ParseResult].
func (r *CollectionResult) UnparsedLines() []UnparsedLine { return r.Unparsed }

func (r *CollectionResult) isParseResult() {}
