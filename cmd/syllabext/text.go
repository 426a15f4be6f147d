// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	syllabext "github.com/LDCODES12/Studious-sub000"
	"github.com/LDCODES12/Studious-sub000/logger"
)

func textCmd() *cobra.Command {
	var timeout time.Duration
	var concurrent int
	var debug bool

	cmd := &cobra.Command{
		Use:   "text <pdf>...",
		Short: "Print each PDF's reconstructed text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := syllabext.NewDefaultConfig()
			cfg.DocTimeout = timeout
			cfg.MaxConcurrentDocs = concurrent
			cfg.DebugOn = debug
			cfg.Logger = func(level logger.LogLevel, msg string, keyvals ...interface{}) {
				if level == logger.DebugLevel && !debug {
					return
				}
				fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)
			}

			ext := syllabext.NewExtractor(cfg)
			texts := ext.ExtractAll(context.Background(), args)

			for i, text := range texts {
				if len(args) > 1 {
					fmt.Printf("==> %s <==\n", args[i])
				}
				if text == "" {
					fmt.Fprintf(os.Stderr, "syllabus text unavailable for %s\n", args[i])
					continue
				}
				fmt.Println(text)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 25*time.Second, "wall-clock budget per document")
	cmd.Flags().IntVar(&concurrent, "concurrent", 3, "max documents extracted at once")
	cmd.Flags().BoolVar(&debug, "debug", false, "log extraction internals")
	return cmd
}
