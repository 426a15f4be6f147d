// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import "strings"

// reconstructPage rebuilds one page's reading order from its runs.
// When a two-column layout is detected, every line of the left column
// precedes every line of the right column, whatever order the content
// stream stored the runs in — undoing the interleaving is the whole
// point of column detection.
func reconstructPage(runs []TextRun) string {
	var kept []TextRun
	for _, run := range runs {
		if strings.TrimSpace(run.Text) != "" {
			kept = append(kept, run)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	boundary, split := detectColumnSplit(kept)
	if !split {
		return assembleLines(kept)
	}

	var left, right []TextRun
	for _, run := range kept {
		if run.X <= boundary {
			left = append(left, run)
		} else {
			right = append(right, run)
		}
	}

	parts := make([]string, 0, 2)
	for _, col := range []string{assembleLines(left), assembleLines(right)} {
		if col != "" {
			parts = append(parts, col)
		}
	}
	return strings.Join(parts, "\n")
}
