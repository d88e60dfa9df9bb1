//
//  Copyright © Opsrig Inc. All rights reserved.
//

package scriptoutput

import (
	"fmt"
	"strconv"
	"strings"
)

// parseCollection parses Collection or BatchCollection output. lines is
// the full line slice of the input; start is the index of the first line
// past the warning preamble.
func parseCollection(lines []string, start int, mode Mode) *CollectionResult {
	batch := mode == ModeBatchCollection
	result := &CollectionResult{
		Mode:       mode,
		Datapoints: []CollectionDatapoint{},
		Unparsed:   []UnparsedLine{},
	}

	for i := start; i < len(lines); i++ {
		lineNumber := i + 1
		raw := lines[i]
		// Classification and parsing work on the trimmed text, but
		// records keep the verbatim source line for display and audit.
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		if isCommentLine(trimmed) {
			result.Unparsed = append(result.Unparsed, UnparsedLine{
				LineNumber: lineNumber,
				Content:    raw,
				Reason:     ReasonComment,
			})
			continue
		}

		eq := strings.Index(trimmed, "=")
		if eq <= 0 {
			// No "=", or "=" with an empty key: not a datapoint.
			result.Unparsed = append(result.Unparsed, UnparsedLine{
				LineNumber: lineNumber,
				Content:    raw,
				Reason:     ReasonNotCollection,
			})
			continue
		}

		result.Datapoints = append(result.Datapoints,
			parseDatapoint(raw, trimmed[:eq], trimmed[eq+1:], lineNumber, batch))
	}

	result.Summary = summarizeDatapoints(result.Datapoints)
	return result
}

// parseDatapoint builds one CollectionDatapoint from a pre-split line.
// rawKey is the text left of the first "=", rawValue everything after.
func parseDatapoint(raw, rawKey, rawValue string, lineNumber int, batch bool) CollectionDatapoint {
	point := CollectionDatapoint{
		Name:       rawKey,
		RawValue:   rawValue,
		LineNumber: lineNumber,
		RawLine:    raw,
	}

	if batch {
		splitWildvalue(&point, rawKey)
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64); err == nil {
		point.Value = &v
	} else {
		point.Issues = append(point.Issues, ValidationIssue{
			Severity:   SeverityError,
			Message:    fmt.Sprintf(`Value "%s" is not a valid number`, rawValue),
			LineNumber: lineNumber,
			Field:      "value",
		})
	}

	// The shape check runs on the final name, after any wildvalue prefix
	// has been stripped.
	if !isStandardName(point.Name) {
		point.Issues = append(point.Issues, ValidationIssue{
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf(`Datapoint name "%s" contains non-standard characters`, point.Name),
			LineNumber: lineNumber,
			Field:      "name",
		})
	}

	return point
}

// splitWildvalue extracts the instance-identifying prefix from a batch
// datapoint key. The wildvalue obeys the same length and character-set
// rules as an Active Discovery instance id.
func splitWildvalue(point *CollectionDatapoint, rawKey string) {
	dot := strings.Index(rawKey, ".")
	if dot <= 0 {
		point.Issues = append(point.Issues, ValidationIssue{
			Severity:   SeverityError,
			Message:    "Batchscript output requires wildvalue prefix (format: wildvalue.datapoint=value)",
			LineNumber: point.LineNumber,
			Field:      "name",
		})
		return
	}

	point.Wildvalue = rawKey[:dot]
	point.Name = rawKey[dot+1:]

	if len(point.Wildvalue) > maxIDLength {
		point.Issues = append(point.Issues, ValidationIssue{
			Severity:   SeverityError,
			Message:    "Instance ID exceeds maximum length of 1024 characters",
			LineNumber: point.LineNumber,
			Field:      "wildvalue",
		})
	}
	if hasInvalidIDChars(point.Wildvalue) {
		point.Issues = append(point.Issues, ValidationIssue{
			Severity:   SeverityError,
			Message:    `Instance ID contains invalid characters (spaces, =, :, \, or #)`,
			LineNumber: point.LineNumber,
			Field:      "wildvalue",
		})
	}
}
