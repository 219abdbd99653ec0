// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/models"
	"github.com/tomtom215/what2eat/internal/weather"
)

func newWeatherCmd(root *rootOptions) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Show the weather context for a location",
		Long: `Weather looks up the current weather through OpenWeather (OPENWEATHER_API_KEY)
and prints the context tag and message the questionnaire would use. Without a
key or coordinates the dummy report is shown.`,
		Example: `  menucli weather --lat 37.56 --lon 126.97`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var latp, lonp *float64
			if cmd.Flags().Changed("lat") {
				latp = &lat
			}
			if cmd.Flags().Changed("lon") {
				lonp = &lon
			}

			client := weather.NewClient(&root.cfg.Weather, logging.Logger())
			report := client.Current(cmd.Context(), latp, lonp)
			view := models.NewWeatherView(report, rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint:gosec // flavor text only

			out := cmd.OutOrStdout()
			if root.output == outputJSON {
				return writeJSON(out, view)
			}

			source := "OpenWeather"
			if report.IsDummy {
				source = "dummy"
			}
			fmt.Fprintf(out, "%.1f°C %s (%s)\n", report.Temp, report.Condition, source)
			if report.Error != "" {
				fmt.Fprintf(out, "  %s\n", report.Error)
			}
			if view.ContextTag != "" {
				fmt.Fprintf(out, "  context: %s\n", view.ContextTag)
			}
			_, err := fmt.Fprintf(out, "  %s\n", view.Message)
			return err
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	return cmd
}
