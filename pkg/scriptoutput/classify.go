//
//  Copyright © Opsrig Inc. All rights reserved.
//

package scriptoutput

import "strings"

// isWarningBanner reports whether a trimmed line belongs to the
// pre-execution notice banner injected upstream of real output.
func isWarningBanner(trimmed string) bool {
	return strings.HasPrefix(trimmed, "[Warning:")
}

// isCommentLine reports whether a trimmed line is a script comment.
func isCommentLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}

// isADCommentLine is the comment predicate for Active Discovery output.
// A "##"-leading line is the AD field delimiter, not a comment: "##name"
// is an instance with an empty id, not commentary.
func isADCommentLine(trimmed string) bool {
	if strings.HasPrefix(trimmed, "//") {
		return true
	}
	return strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "##")
}

// invalidIDChars are the characters rejected in instance ids and
// batch wildvalues.
const invalidIDChars = " =:\\#"

// maxIDLength bounds instance ids and batch wildvalues.
const maxIDLength = 1024

// maxNameLength is the recommended cap on instance names.
const maxNameLength = 255

// hasInvalidIDChars reports whether s contains any character that is
// illegal in an instance id or wildvalue.
func hasInvalidIDChars(s string) bool {
	return strings.ContainsAny(s, invalidIDChars)
}

// isStandardName reports whether s matches the datapoint name shape
// [A-Za-z0-9_.-]+ . Implemented as a character scan rather than a
// regexp; the class is fixed and ASCII.
func isStandardName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}
