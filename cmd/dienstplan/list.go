package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dienstplan/internal/ics"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <file.ics>",
		Short: "List the entries of an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.conf.Location()
			if err != nil {
				return err
			}
			events, err := ics.ReadFile(args[0], loc)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, ev := range events {
				fmt.Fprintf(w, "%s  %s  %s\n", ev.Start.Format("2006-01-02"), timeSpan(ev), ev.Label)
			}
			fmt.Fprintf(w, "%d entries\n", len(events))
			return nil
		},
	}
}
