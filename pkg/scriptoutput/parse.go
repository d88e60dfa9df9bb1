//
//  Copyright © Opsrig Inc. All rights reserved.
//

package scriptoutput

import "strings"

// Parse turns raw script output into a structured, per-line-annotated
// result for the given mode.
//
// A contiguous prefix of blank lines and "[Warning:"-leading banner
// lines is discarded before parsing; the skip terminates permanently at
// the first line that is neither, and later banner lines are classified
// like any other line. Line numbers in the result always refer to the
// original input.
//
// Parse has no failure path: empty or garbage input yields a well-formed
// result with empty record lists. Freeform mode returns nil, since no
// structural meaning is imposed on free-form scripts.
func Parse(output string, mode Mode) ParseResult {
	if mode == ModeFreeform {
		return nil
	}

	lines := strings.Split(output, "\n")
	start := skipWarningPreamble(lines)

	switch mode {
	case ModeActiveDiscovery:
		return parseActiveDiscovery(lines, start)
	case ModeCollection, ModeBatchCollection:
		return parseCollection(lines, start, mode)
	}
	return nil
}

// skipWarningPreamble returns the index of the first line that is
// neither blank nor part of the upstream warning banner. This is not a
// per-line filter: scanning stops at the first real line, and everything
// after it is preserved verbatim.
func skipWarningPreamble(lines []string) int {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isWarningBanner(trimmed) {
			continue
		}
		return i
	}
	return len(lines)
}
