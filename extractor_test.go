// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LDCODES12/Studious-sub000/logger"
)

// fakeProvider serves canned runs per page, optionally failing on one
// page or stalling to simulate a slow decode.
type fakeProvider struct {
	pages  [][]TextRun
	errAt  int // 1-based page index that fails; 0 means none
	delay  time.Duration
	closed atomic.Bool
}

func (f *fakeProvider) NumPages() int { return len(f.pages) }

func (f *fakeProvider) PageRuns(ctx context.Context, pageNum int) ([]TextRun, error) {
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if pageNum == f.errAt {
		return nil, errors.New("corrupt content stream")
	}
	return f.pages[pageNum-1], nil
}

func (f *fakeProvider) Close() error {
	f.closed.Store(true)
	return nil
}

func pageOfText(s string) []TextRun {
	return []TextRun{{Text: s, X: 10, Y: 700}}
}

func newFakeExtractor(t *testing.T, p *fakeProvider, mutate func(cfg *Config)) *Extractor {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.MaxDocumentBytes = 0 // fake paths have no file behind them
	cfg.OpenDocument = func(path string) (RunProvider, error) {
		return p, nil
	}
	if mutate != nil {
		mutate(cfg)
	}
	return NewExtractor(cfg)
}

func TestExtractor_Extract_JoinsPagesInOrder(t *testing.T) {
	p := &fakeProvider{pages: [][]TextRun{
		pageOfText("Page one"),
		pageOfText("Page two"),
		pageOfText("Page three"),
		pageOfText("Page four"),
	}}
	ext := newFakeExtractor(t, p, func(cfg *Config) {
		cfg.PageWorkers = 4 // out-of-order completion must not reorder pages
	})

	out := ext.Extract(context.Background(), "course.pdf")
	assert.Equal(t, "Page one\n\nPage two\n\nPage three\n\nPage four", out)
	assert.True(t, p.closed.Load(), "provider must be closed after extraction")
}

func TestExtractor_Extract_SkipsEmptyPages(t *testing.T) {
	p := &fakeProvider{pages: [][]TextRun{
		pageOfText("Syllabus"),
		nil,
		pageOfText("Schedule"),
	}}
	ext := newFakeExtractor(t, p, nil)

	out := ext.Extract(context.Background(), "course.pdf")
	assert.Equal(t, "Syllabus\n\nSchedule", out)
}

func TestExtractor_Extract_PageErrorFailsWholeDocument(t *testing.T) {
	p := &fakeProvider{
		pages: [][]TextRun{
			pageOfText("Page one"),
			pageOfText("Page two"),
			pageOfText("Page three"),
		},
		errAt: 2,
	}
	ext := newFakeExtractor(t, p, nil)

	// No partial document: a broken middle page risks a mid-sentence
	// join confusing the schedule parser.
	assert.Equal(t, "", ext.Extract(context.Background(), "course.pdf"))
}

func TestExtractor_Extract_OpenErrorYieldsEmpty(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxDocumentBytes = 0
	cfg.OpenDocument = func(path string) (RunProvider, error) {
		return nil, errors.New("malformed xref table")
	}
	ext := NewExtractor(cfg)

	assert.Equal(t, "", ext.Extract(context.Background(), "broken.pdf"))
}

func TestExtractor_Extract_ZeroPages(t *testing.T) {
	ext := newFakeExtractor(t, &fakeProvider{}, nil)
	assert.Equal(t, "", ext.Extract(context.Background(), "empty.pdf"))
}

func TestExtractor_Extract_TimeoutYieldsEmpty(t *testing.T) {
	p := &fakeProvider{
		pages: [][]TextRun{pageOfText("never arrives")},
		delay: 500 * time.Millisecond,
	}
	ext := newFakeExtractor(t, p, func(cfg *Config) {
		cfg.DocTimeout = 10 * time.Millisecond
	})

	start := time.Now()
	out := ext.Extract(context.Background(), "slow.pdf")
	assert.Equal(t, "", out)
	assert.Less(t, time.Since(start), 400*time.Millisecond,
		"a timed-out document must give up, not wait out the decode")
}

func TestExtractor_Extract_OversizedDocumentRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o600))

	p := &fakeProvider{pages: [][]TextRun{pageOfText("should never decode")}}
	ext := newFakeExtractor(t, p, func(cfg *Config) {
		cfg.MaxDocumentBytes = 5
	})

	assert.Equal(t, "", ext.Extract(context.Background(), path))
}

func TestExtractor_Extract_LowYieldWarning(t *testing.T) {
	p := &fakeProvider{pages: [][]TextRun{
		pageOfText("short"), pageOfText("short"), pageOfText("short"),
		pageOfText("short"), pageOfText("short"),
	}}

	var mu sync.Mutex
	var warnings []string
	ext := newFakeExtractor(t, p, func(cfg *Config) {
		cfg.Logger = func(level logger.LogLevel, msg string, keyvals ...interface{}) {
			if level == logger.WarnLevel {
				mu.Lock()
				warnings = append(warnings, msg)
				mu.Unlock()
			}
		}
	})

	out := ext.Extract(context.Background(), "scanned.pdf")
	assert.NotEmpty(t, out, "low yield still returns whatever text was found")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Low text yield")
}

func TestExtractor_ExtractAll_PreservesOrderAndCap(t *testing.T) {
	var current, peak atomic.Int32

	cfg := NewDefaultConfig()
	cfg.MaxDocumentBytes = 0
	cfg.MaxConcurrentDocs = 2
	cfg.OpenDocument = func(path string) (RunProvider, error) {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer current.Add(-1)
		time.Sleep(20 * time.Millisecond)
		return &fakeProvider{pages: [][]TextRun{pageOfText(path)}}, nil
	}
	ext := NewExtractor(cfg)

	paths := []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf", "e.pdf", "f.pdf"}
	out := ext.ExtractAll(context.Background(), paths)

	require.Len(t, out, len(paths))
	for i, path := range paths {
		assert.Equal(t, path, out[i], "results must align with input paths")
	}
	assert.LessOrEqual(t, peak.Load(), int32(2), "concurrency cap exceeded")
}

// Real PDFs, when present, exercise the ledongthuc-backed provider end
// to end. The directory is optional so the suite stays hermetic.
func getSamplePDFs(t *testing.T) []string {
	t.Helper()
	files, err := os.ReadDir("testdata")
	if err != nil {
		t.Skip("no testdata directory")
	}
	var pdfs []string
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".pdf") {
			pdfs = append(pdfs, filepath.Join("testdata", f.Name()))
		}
	}
	if len(pdfs) == 0 {
		t.Skip("no PDF files found in testdata/")
	}
	return pdfs
}

func TestExtractor_Extract_SamplePDFs(t *testing.T) {
	pdfs := getSamplePDFs(t)
	ext := NewExtractor(NewDefaultConfig())
	ctx := context.Background()

	for _, path := range pdfs {
		t.Run(filepath.Base(path), func(t *testing.T) {
			text := ext.Extract(ctx, path)
			if text == "" {
				t.Logf("no text extracted from %s (scanned or malformed)", path)
				t.SkipNow()
			}
			assert.NotEmpty(t, strings.TrimSpace(text))
		})
	}
}

func TestNewExtractor_PanicsOnInvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxConcurrentDocs = 0
	assert.Panics(t, func() { NewExtractor(cfg) })
}

func TestExtractor_Extract_CancelledContext(t *testing.T) {
	ext := newFakeExtractor(t, &fakeProvider{pages: [][]TextRun{pageOfText("x")}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "", ext.Extract(ctx, fmt.Sprintf("cancelled-%d.pdf", 1)))
}
