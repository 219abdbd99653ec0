// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/what2eat/internal/config"
	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/menu"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configFile  string
	catalogPath string
	output      string
	logLevel    string

	cfg     *config.Config
	catalog *menu.Catalog
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "menucli",
		Short:         "Pick something to eat from the What2Eat catalog",
		Long:          `menucli runs the What2Eat recommendation engine locally: list the questionnaire steps, browse the catalog, get a recommendation for a set of answers, or look up the weather context.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: CONFIG_PATH or the standard search paths)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "catalog JSON file (default: catalog.path from config, else the embedded catalog)")
	flags.StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	cmd.AddCommand(
		newRecommendCmd(opts),
		newCatalogCmd(opts),
		newStepsCmd(opts),
		newWeatherCmd(opts),
	)
	return cmd
}

// init loads configuration and the catalog once flags are parsed.
func (o *rootOptions) init(stderr io.Writer) error {
	if o.output != outputText && o.output != outputJSON {
		return fmt.Errorf("unknown output format %q (want text or json)", o.output)
	}

	logging.Init(logging.Config{
		Level:     o.logLevel,
		Format:    "console",
		Timestamp: false,
		Output:    stderr,
	})

	cfg, err := config.LoadFrom(o.configFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	path := o.catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	if path == "" {
		o.catalog, err = menu.Default()
	} else {
		o.catalog, err = menu.Load(path)
	}
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	return nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// flagName turns a facet id like "cookingMethod" into "cooking-method".
func flagName(f menu.Facet) string {
	var b strings.Builder
	for i, r := range string(f) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
