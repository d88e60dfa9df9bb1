//
//  Copyright © Opsrig Inc. All rights reserved.
//

package scriptoutput

import (
	"fmt"
	"strings"
)

// Delimiters of the Active Discovery line format.
const (
	adFieldDelim = "##"
	adPropsDelim = "####"
)

// propertyPair keeps a parsed key=value pair in encounter order so that
// validation issues are emitted deterministically.
type propertyPair struct {
	key   string
	value string
}

// parseActiveDiscovery parses Active Discovery output. lines is the full
// line slice of the input; start is the index of the first line past the
// warning preamble. Line numbers are 1-based over the original input.
func parseActiveDiscovery(lines []string, start int) *ADResult {
	result := &ADResult{
		Instances: []ADInstance{},
		Unparsed:  []UnparsedLine{},
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

		if isADCommentLine(trimmed) {
			result.Unparsed = append(result.Unparsed, UnparsedLine{
				LineNumber: lineNumber,
				Content:    raw,
				Reason:     ReasonComment,
			})
			continue
		}

		if !strings.Contains(trimmed, adFieldDelim) {
			result.Unparsed = append(result.Unparsed, UnparsedLine{
				LineNumber: lineNumber,
				Content:    raw,
				Reason:     ReasonNotAD,
			})
			continue
		}

		result.Instances = append(result.Instances, parseADLine(raw, trimmed, lineNumber))
	}

	result.Summary = summarizeInstances(result.Instances)
	return result
}

// parseADLine turns one candidate line into an ADInstance with any
// accumulated issues. trimmed is known to contain "##"; raw is the
// verbatim source line.
func parseADLine(raw, trimmed string, lineNumber int) ADInstance {
	instance := ADInstance{
		LineNumber: lineNumber,
		RawLine:    raw,
	}

	// The four-character delimiter splits off the properties block
	// before the main part is segmented on "##".
	mainPart := trimmed
	propsPart := ""
	hasProps := false
	if idx := strings.Index(trimmed, adPropsDelim); idx >= 0 {
		mainPart = trimmed[:idx]
		propsPart = trimmed[idx+len(adPropsDelim):]
		hasProps = true
	}

	segments := strings.Split(mainPart, adFieldDelim)
	instance.ID = segments[0]
	if len(segments) > 1 {
		instance.Name = segments[1]
	}
	if len(segments) > 2 {
		// Segment 2 is the description; anything past it is ignored.
		instance.Description = segments[2]
	}

	var pairs []propertyPair
	if hasProps {
		pairs = parseProperties(propsPart, lineNumber, &instance.Issues)
		if len(pairs) > 0 {
			instance.Properties = make(map[string]string, len(pairs))
			for _, p := range pairs {
				// Duplicate keys: last occurrence wins silently.
				instance.Properties[p.key] = p.value
			}
		}
	}

	validateInstance(&instance, pairs)
	return instance
}

// parseProperties splits a properties block into key=value pairs,
// recording an Error issue for any non-empty pair that lacks a usable
// "=" separator. Values may themselves contain "=": only the first one
// separates.
func parseProperties(block string, lineNumber int, issues *[]ValidationIssue) []propertyPair {
	var pairs []propertyPair
	for _, raw := range strings.Split(block, "&") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		eq := strings.Index(raw, "=")
		if eq <= 0 {
			*issues = append(*issues, ValidationIssue{
				Severity:   SeverityError,
				Message:    fmt.Sprintf(`Invalid property format: "%s" (expected key=value)`, raw),
				LineNumber: lineNumber,
				Field:      "properties",
			})
			continue
		}
		pairs = append(pairs, propertyPair{key: raw[:eq], value: raw[eq+1:]})
	}
	return pairs
}

// validateInstance applies the field-level constraints to a parsed
// instance. pairs carries the properties in encounter order so key
// issues come out deterministically.
func validateInstance(instance *ADInstance, pairs []propertyPair) {
	line := instance.LineNumber

	if strings.TrimSpace(instance.ID) == "" {
		instance.Issues = append(instance.Issues, ValidationIssue{
			Severity:   SeverityError,
			Message:    "Instance ID is required",
			LineNumber: line,
			Field:      "id",
		})
	} else {
		// Both checks run independently; an id can carry two errors.
		if len(instance.ID) > maxIDLength {
			instance.Issues = append(instance.Issues, ValidationIssue{
				Severity:   SeverityError,
				Message:    "Instance ID exceeds maximum length of 1024 characters",
				LineNumber: line,
				Field:      "id",
			})
		}
		if hasInvalidIDChars(instance.ID) {
			instance.Issues = append(instance.Issues, ValidationIssue{
				Severity:   SeverityError,
				Message:    `Instance ID contains invalid characters (spaces, =, :, \, or #)`,
				LineNumber: line,
				Field:      "id",
			})
		}
	}

	if len(instance.Name) > maxNameLength {
		instance.Issues = append(instance.Issues, ValidationIssue{
			Severity:   SeverityWarning,
			Message:    "Instance name exceeds recommended length of 255 characters",
			LineNumber: line,
			Field:      "name",
		})
	}

	for _, p := range pairs {
		if strings.TrimSpace(p.key) == "" {
			instance.Issues = append(instance.Issues, ValidationIssue{
				Severity:   SeverityError,
				Message:    "Property key cannot be empty",
				LineNumber: line,
				Field:      "properties",
			})
		}
	}
}
