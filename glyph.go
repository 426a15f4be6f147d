// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import (
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/LDCODES12/Studious-sub000/logger"
)

// documentProvider adapts a ledongthuc/pdf reader to the RunProvider
// contract.
type documentProvider struct {
	f *os.File
	r *pdf.Reader
}

// Open decodes the PDF at path and exposes its pages as positioned
// text runs.
func Open(path string) (RunProvider, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &documentProvider{f: f, r: r}, nil
}

func (d *documentProvider) NumPages() int {
	return d.r.NumPage()
}

// PageRuns decodes one page's content stream into runs. The underlying
// reader panics on malformed streams; those are recovered into errors
// so a broken page fails its document instead of the process.
func (d *documentProvider) PageRuns(ctx context.Context, pageNum int) (runs []TextRun, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprint(r))
			runs = nil
			err = fmt.Errorf("decode page %d: %v", pageNum, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := d.r.Page(pageNum)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: null page", pageNum)
	}

	content := page.Content()
	logger.Debug(fmt.Sprintf("Decoded page runs: page=%d runs=%d", pageNum, len(content.Text)), true)

	runs = make([]TextRun, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		runs = append(runs, TextRun{Text: t.S, X: t.X, Y: t.Y})
	}
	return runs, nil
}

func (d *documentProvider) Close() error {
	return d.f.Close()
}
