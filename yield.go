// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

// Yield thresholds. A document with more than lowYieldMinPages pages
// but fewer than lowYieldMinChars extracted characters almost always
// has no text layer (scanned or image-only).
const (
	lowYieldMinPages = 2
	lowYieldMinChars = 300

	// MinStructuredChars is the floor the calling layer applies before
	// handing text to schedule extraction; shorter text is rejected as
	// too short to process rather than errored on.
	MinStructuredChars = 500
)

// LowTextYield reports whether a document's extracted text volume is
// implausibly small for its page count. It is a triage signal for
// operators, not a failure: extraction still returns whatever text was
// found.
func LowTextYield(charCount, pageCount int) bool {
	return pageCount > lowYieldMinPages && charCount < lowYieldMinChars
}

// UsableForStructuring reports whether extracted text is long enough to
// be worth handing to schedule extraction.
func UsableForStructuring(text string) bool {
	return len(text) >= MinStructuredChars
}
