// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import "sort"

// Two-column detection thresholds, tuned against real syllabus
// layouts. Do not re-derive: fixtures that need different values
// signal a semantic change, not a bug fix.
const (
	columnMinRuns     = 20
	columnMinXSpread  = 180.0
	columnMinGapRatio = 0.15
)

// detectColumnSplit decides whether a page's runs form two side-by-side
// reading columns. It scans the sorted X origins for the single largest
// gap: the gap must be a substantial fraction of the total horizontal
// spread and must fall roughly mid-list, so indentation gaps and a lone
// outlier run never split a genuinely single-column page. Returns the
// boundary X between the columns, or ok=false for a single column.
// Layouts with three or more columns degrade to single-column handling
// without error.
func detectColumnSplit(runs []TextRun) (boundary float64, ok bool) {
	if len(runs) < columnMinRuns {
		return 0, false
	}

	xs := make([]float64, len(runs))
	for i, run := range runs {
		xs[i] = run.X
	}
	sort.Float64s(xs)

	xRange := xs[len(xs)-1] - xs[0]
	if xRange <= columnMinXSpread {
		return 0, false
	}

	maxGap, gapAt := 0.0, -1
	for i := 1; i < len(xs); i++ {
		if gap := xs[i] - xs[i-1]; gap > maxGap {
			maxGap = gap
			gapAt = i
		}
	}

	if maxGap/xRange <= columnMinGapRatio {
		return 0, false
	}

	// The gap has to roughly bisect the runs; a gap near either end of
	// the list is an outlier, not a gutter.
	pos := float64(gapAt)
	if pos <= 0.25*float64(len(xs)) || pos >= 0.75*float64(len(xs)) {
		return 0, false
	}

	return (xs[gapAt-1] + xs[gapAt]) / 2, true
}
