package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var timeoutFlag time.Duration
var eventsFlag bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navsim <script.toml>",
		Short: "Replay a navigation script against a headless browser",
		Long: `navsim loads a TOML script describing a landing page, the views the
application can render and a sequence of steps (click, back, forward,
redirect, scroll, resize). It replays the steps through the canter navigation
core on an in-memory browser and prints the URL, title and scroll offset
after every step.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := LoadScript(args[0])
			if err != nil {
				return err
			}

			res, err := Run(script, timeoutFlag)
			if err != nil {
				return err
			}

			renderRows(cmd.OutOrStdout(), res.Rows)
			if eventsFlag {
				renderEvents(cmd.OutOrStdout(), res.Emitted)
			}
			return nil
		},
	}
	cmd.Flags().DurationVarP(&timeoutFlag, "timeout", "t", 5*time.Second, "maximum time to wait for each render")
	cmd.Flags().BoolVarP(&eventsFlag, "events", "e", false, "also print the document events published")

	return cmd
}

func renderRows(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Action", "URL", "Title", "Scroll", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, r := range rows {
		table.Append([]string{r.Step, r.Action, r.URL, r.Title, fmt.Sprintf("%.0f", r.ScrollY), r.Outcome})
	}
	table.Render()
}

func renderEvents(w io.Writer, emitted map[string]int) {
	names := make([]string, 0, len(emitted))
	total := 0
	for name, n := range emitted {
		names = append(names, name)
		total += n
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Event", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, name := range names {
		table.Append([]string{name, fmt.Sprintf("%d", emitted[name])})
	}
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total)})
	table.Render()
}
