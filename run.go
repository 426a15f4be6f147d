// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import "context"

// A TextRun is one positioned string of text as emitted by a PDF
// content-stream decoder. X and Y are the run's baseline origin in
// unscaled page units, with Y increasing upward from the page bottom.
type TextRun struct {
	Text string
	X    float64
	Y    float64
}

// RunFromTransform builds a TextRun from a decoder's 2-D affine text
// transform [a b c d e f]; the translation components e and f carry
// the baseline origin.
func RunFromTransform(text string, tm [6]float64) TextRun {
	return TextRun{Text: text, X: tm[4], Y: tm[5]}
}

// RunProvider decodes one document into positioned text runs, one page
// at a time. Page numbers are indexed starting at 1, not 0. The order
// of runs within a page carries no meaning; reading order is
// reconstructed from the run geometry alone.
type RunProvider interface {
	NumPages() int
	PageRuns(ctx context.Context, pageNum int) ([]TextRun, error)
	Close() error
}
