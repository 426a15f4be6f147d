// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import (
	"math"
	"sort"
	"strings"
)

// assembleLines renders one column's runs as human-readable lines.
//
// Runs join the same line when their Y origins round to the same page
// unit; two runs straddling a rounding boundary stay on separate lines,
// an accepted granularity limit. Lines are emitted top of page first
// (PDF Y increases upward) and runs within a line left to right. Run
// text is concatenated without an injected separator: decoders emit
// inter-word spacing as part of the run text itself.
func assembleLines(runs []TextRun) string {
	byLine := make(map[int][]TextRun)
	for _, run := range runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		key := int(math.Round(run.Y))
		byLine[key] = append(byLine[key], run)
	}
	if len(byLine) == 0 {
		return ""
	}

	keys := make([]int, 0, len(byLine))
	for k := range byLine {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		line := byLine[k]
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })

		var b strings.Builder
		for _, run := range line {
			b.WriteString(run.Text)
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, "\n")
}
