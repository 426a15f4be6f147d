// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package syllabext

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/LDCODES12/Studious-sub000/logger"
)

// Config controls extraction scheduling. The page reconstruction core
// is pure; everything here is orchestration policy around it.
type Config struct {
	// MaxConcurrentDocs caps simultaneous document extractions across
	// one sync run.
	MaxConcurrentDocs int `validate:"min=1,max=10"`
	// PageWorkers bounds page decode parallelism within one document.
	// The default of 1 decodes pages strictly sequentially; higher
	// values still join pages in original order.
	PageWorkers int `validate:"min=1,max=8"`
	// DocTimeout is the wall-clock budget for one document. A timed-out
	// document yields empty text and is not retried: a slow PDF is
	// assumed consistently slow.
	DocTimeout time.Duration `validate:"required"`
	// MaxDocumentBytes rejects oversized source files before decoding.
	// Zero disables the cap.
	MaxDocumentBytes int64 `validate:"min=0"`
	DebugOn          bool
	Logger           logger.LogFunc
	// OpenDocument supplies the glyph-run decoder. Left nil, the
	// ledongthuc/pdf-backed Open is used.
	OpenDocument func(path string) (RunProvider, error)
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentDocs: 3,
		PageWorkers:       1,
		DocTimeout:        25 * time.Second,
		MaxDocumentBytes:  5 << 20,
		DebugOn:           false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}
