// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/LDCODES12/Studious-sub000/logger"
)

// Extractor turns syllabus PDFs into reading-order plain text.
//
// Extract never fails: transport errors, malformed streams, timeouts
// and zero-text documents all yield an empty string, with detail on the
// logger side channel only. Callers that care about the empty-versus-
// failed distinction watch for the out-of-band yield warnings; the
// return value alone does not carry it.
type Extractor struct {
	cfg  *Config
	sem  *semaphore.Weighted
	open func(path string) (RunProvider, error)
}

// NewExtractor validates the config and creates an Extractor.
func NewExtractor(cfg *Config) *Extractor {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	open := cfg.OpenDocument
	if open == nil {
		open = Open
	}

	logger.Debug(fmt.Sprintf("Extractor initialized: max_concurrent_docs=%d page_workers=%d doc_timeout=%v",
		cfg.MaxConcurrentDocs, cfg.PageWorkers, cfg.DocTimeout), true)

	return &Extractor{
		cfg:  cfg,
		sem:  semaphore.NewWeighted(int64(cfg.MaxConcurrentDocs)),
		open: open,
	}
}

// Extract returns one document's full reading-order text, pages joined
// by a blank line. It returns "" on any failure and never panics or
// returns an error past this boundary.
func (e *Extractor) Extract(ctx context.Context, path string) string {
	logger.Debug(fmt.Sprintf("Starting extraction: path=%s", path), true)

	if err := e.sem.Acquire(ctx, 1); err != nil {
		logger.Debug(fmt.Sprintf("Failed to acquire slot: path=%s err=%v", path, err), true)
		return ""
	}
	defer e.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, e.cfg.DocTimeout)
	defer cancel()

	text, pages, err := e.extract(ctx, path)
	if err != nil {
		logger.Error(fmt.Sprintf("Extraction failed: path=%s err=%v", path, err))
		return ""
	}

	if LowTextYield(len(text), pages) {
		logger.Warn(fmt.Sprintf("Low text yield, document likely scanned: path=%s pages=%d chars=%d", path, pages, len(text)))
	}

	logger.Debug(fmt.Sprintf("Extraction completed: path=%s pages=%d total_chars=%d", path, pages, len(text)), true)
	return text
}

// ExtractAll processes several documents with at most MaxConcurrentDocs
// in flight. Results are positionally aligned with paths; one slow or
// broken syllabus never blocks the rest of a sync run.
func (e *Extractor) ExtractAll(ctx context.Context, paths []string) []string {
	out := make([]string, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			out[i] = e.Extract(ctx, path)
		}(i, path)
	}
	wg.Wait()
	return out
}

func (e *Extractor) extract(ctx context.Context, path string) (string, int, error) {
	if e.cfg.MaxDocumentBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", 0, fmt.Errorf("stat document: %w", err)
		}
		if info.Size() > e.cfg.MaxDocumentBytes {
			return "", 0, fmt.Errorf("document too large: %d bytes (limit %d)", info.Size(), e.cfg.MaxDocumentBytes)
		}
	}

	doc, err := e.open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open document: %w", err)
	}
	defer func() {
		_ = doc.Close()
	}()

	total := doc.NumPages()
	logger.Debug(fmt.Sprintf("Total pages detected: path=%s pages=%d", path, total), true)
	if total == 0 {
		return "", 0, nil
	}

	pageTexts, err := e.reconstructPages(ctx, doc, total)
	if err != nil {
		return "", total, err
	}

	parts := make([]string, 0, total)
	for _, pt := range pageTexts {
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n")), total, nil
}

type pageResult struct {
	index int
	text  string
	err   error
}

// reconstructPages decodes and reorders every page, joining results in
// page order no matter which worker finished first. Any page error
// fails the whole document: splicing around a broken page risks handing
// the schedule parser a mid-sentence join.
func (e *Extractor) reconstructPages(ctx context.Context, doc RunProvider, total int) ([]string, error) {
	workers := e.cfg.PageWorkers
	if workers > total {
		workers = total
	}
	logger.Debug(fmt.Sprintf("Starting page workers: count=%d pages=%d", workers, total), true)

	jobs := make(chan int, total)
	results := make(chan pageResult, total)

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range jobs {
				runs, err := doc.PageRuns(ctx, i)
				if err != nil {
					logger.Debug(fmt.Sprintf("Worker: page decode error: worker_id=%d page=%d err=%v", id, i, err), true)
					results <- pageResult{index: i, err: err}
					continue
				}
				results <- pageResult{index: i, text: reconstructPage(runs)}
			}
		}(w)
	}

	for i := 1; i <= total; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	texts := make([]string, total)
	var firstErr error
	for res := range results {
		if res.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("page %d: %w", res.index, res.err)
		}
		texts[res.index-1] = res.text
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return texts, nil
}
