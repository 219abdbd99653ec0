// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/what2eat/internal/menu"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	filters := make(map[menu.Facet]*string)

	cmd := &cobra.Command{
		Use:   "catalog [id]",
		Short: "List catalog items, or show one item",
		Long: `Catalog lists every item in the loaded catalog. Facet flags keep only items
tagged with the given value; with an id argument the full record is shown.`,
		Example: `  menucli catalog
  menucli catalog --cuisine 한식 --temperature 뜨거운
  menucli catalog kimchi-jjigae -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				it, ok := root.catalog.Get(args[0])
				if !ok {
					return fmt.Errorf("menu item %q not found", args[0])
				}
				if root.output == outputJSON {
					return writeJSON(out, it)
				}
				return printItem(out, &it)
			}

			items := root.catalog.Filter(func(it *menu.Item) bool {
				for facet, want := range filters {
					if *want != "" && !it.Tags.Has(facet, *want) {
						return false
					}
				}
				return true
			})
			if root.output == outputJSON {
				return writeJSON(out, items)
			}
			return printItems(out, items)
		},
	}

	for _, step := range menu.Steps() {
		v := new(string)
		filters[step.ID] = v
		cmd.Flags().StringVar(v, flagName(step.ID), "", "only items tagged with this "+string(step.ID)+" value")
	}
	return cmd
}

func printItems(w io.Writer, items []menu.Item) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tPRICE")
	for i := range items {
		it := &items[i]
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", it.ID, it.Emoji, it.Name, strings.Join(it.Tags.Cuisine, ","), it.PriceRange)
	}
	fmt.Fprintf(tw, "\n%d items\n", len(items))
	return tw.Flush()
}

func printItem(w io.Writer, it *menu.Item) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s %s (%s)\n\n", it.Emoji, it.Name, it.NameEn)
	fmt.Fprintf(tw, "id\t%s\n", it.ID)
	fmt.Fprintf(tw, "description\t%s\n", it.Description)
	fmt.Fprintf(tw, "spicy\t%d/3\n", it.SpicyLevel)
	fmt.Fprintf(tw, "cook time\t%s\n", it.CookTime)
	fmt.Fprintf(tw, "calories\t%s\n", it.Calories)
	fmt.Fprintf(tw, "price\t%s\n", it.PriceRange)
	for _, step := range menu.Steps() {
		if values := it.Tags.Values(step.ID); len(values) > 0 {
			fmt.Fprintf(tw, "%s\t%s\n", step.ID, strings.Join(values, ", "))
		}
	}
	fmt.Fprintf(tw, "map\t%s\n", menu.MapSearchURL(it.Name))
	return tw.Flush()
}

func newStepsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the questionnaire steps and their options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps := menu.Steps()
			out := cmd.OutOrStdout()
			if root.output == outputJSON {
				return writeJSON(out, steps)
			}

			var b strings.Builder
			for i, step := range steps {
				kind := "pick one"
				if step.MultiSelect {
					kind = "pick any"
				}
				if step.Optional {
					kind += ", optional"
				}
				fmt.Fprintf(&b, "%d. %s  --%s (%s)\n", i+1, step.Title, flagName(step.ID), kind)
				for _, o := range step.Options {
					fmt.Fprintf(&b, "     %-14s %s %s\n", o.ID, o.Emoji, o.Label)
				}
			}
			_, err := io.WriteString(out, b.String())
			return err
		},
	}
}
