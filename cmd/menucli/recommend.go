// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/menu"
	"github.com/tomtom215/what2eat/internal/recommend"
	"github.com/tomtom215/what2eat/internal/validation"
)

type recommendOptions struct {
	answers map[menu.Facet]*[]string
	exclude []string
	temp    float64
	seed    int64
	retries int
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{answers: make(map[menu.Facet]*[]string)}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a dish for a set of answers",
		Long: `Recommend scores the catalog against the given answers and draws one dish
plus diverse alternatives. Each questionnaire step is a flag taking one or more
comma-separated option ids; "menucli steps" lists them.

--retry N repeats the draw N times, excluding every previous primary, the way
the "something else" button does.`,
		Example: `  menucli recommend --meal-time 점심 --companion 혼밥 --taste 매콤,고소
  menucli recommend --cuisine 한식 --temp 8 --seed 42 -o json
  menucli recommend --meal-time 저녁 --retry 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var temp *float64
			if cmd.Flags().Changed("temp") {
				temp = &opts.temp
			}
			return runRecommend(cmd, root, opts, temp)
		},
	}

	flags := cmd.Flags()
	for _, step := range menu.Steps() {
		values := new([]string)
		opts.answers[step.ID] = values
		flags.StringSliceVar(values, flagName(step.ID), nil, step.Title)
	}
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "item ids that must not be recommended")
	flags.Float64Var(&opts.temp, "temp", 0, "current temperature in °C")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed for a reproducible draw (0: random)")
	flags.IntVar(&opts.retries, "retry", 0, "re-draw N times, excluding each previous primary")

	return cmd
}

func runRecommend(cmd *cobra.Command, root *rootOptions, opts *recommendOptions, temp *float64) error {
	var sel recommend.Selections
	for facet, values := range opts.answers {
		if len(*values) > 0 {
			sel.Set(facet, *values)
		}
	}
	if verr := validation.ValidateStruct(&sel); verr != nil {
		return verr
	}
	if opts.retries < 0 {
		return errors.New("--retry must not be negative")
	}

	engine, err := recommend.NewEngine(root.catalog, &root.cfg.Recommend, logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	exclude := append([]string(nil), opts.exclude...)
	seed := opts.seed
	var resp *recommend.Response
	for i := 0; i <= opts.retries; i++ {
		resp, err = engine.Recommend(cmd.Context(), recommend.Request{
			Selections:  sel,
			ExcludeIDs:  exclude,
			WeatherTemp: temp,
			RequestID:   uuid.New().String(),
			Seed:        seed,
		})
		if err != nil {
			return err
		}
		if !resp.Found() {
			break
		}
		if i < opts.retries {
			exclude = append(exclude, resp.Primary.Item.ID)
			if seed != 0 {
				seed++
			}
		}
	}

	if root.output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	return printRecommendation(cmd.OutOrStdout(), resp)
}

func printRecommendation(w io.Writer, resp *recommend.Response) error {
	if !resp.Found() {
		_, err := fmt.Fprintf(w, "Nothing matches these answers (%d excluded). Try fewer constraints.\n", resp.Metadata.Excluded)
		return err
	}

	p := resp.Primary
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)  score %d\n", p.Item.Emoji, p.Item.Name, p.Item.NameEn, p.Score)
	fmt.Fprintf(&b, "  %s\n", p.Reason)
	fmt.Fprintf(&b, "  %s · %s · %s\n", p.Item.PriceRange, p.Item.CookTime, p.Item.Calories)
	fmt.Fprintf(&b, "  map: %s\n", p.Share.MapURL)
	if len(resp.Alternatives) > 0 {
		b.WriteString("\nAlso consider:\n")
		for _, alt := range resp.Alternatives {
			fmt.Fprintf(&b, "  %s %s (%s)  score %d\n", alt.Item.Emoji, alt.Item.Name, alt.Item.NameEn, alt.Score)
		}
	}
	fmt.Fprintf(&b, "\n%d candidates, drawn from the top %d\n", resp.Candidates, resp.PoolSize)

	_, err := io.WriteString(w, b.String())
	return err
}
