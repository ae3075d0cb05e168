package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"dienstplan/internal/model"
	"dienstplan/internal/roster"
)

func newInspectCmd(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print what would be extracted, day by day, without writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input != "" {
				a.conf.Input = input
			}
			schedule, loc, err := loadSchedule(a.conf)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), schedule, loc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "OCR text file")
	return cmd
}

// printReport lists every day of the header's week, then any parsed day that
// falls outside it.
func printReport(w io.Writer, s *model.Schedule, loc *time.Location) {
	days := roster.WeekDays(s.Anchor, loc)

	fmt.Fprintf(w, "Week %s", s.Anchor.Start.Format("02.01.2006"))
	if len(days) > 0 {
		fmt.Fprintf(w, " - %s", days[len(days)-1].Format("02.01.2006"))
	}
	fmt.Fprintf(w, " (year %d, %d events)\n", s.Anchor.Year, s.Len())

	seen := make(map[*model.DaySchedule]bool)
	for _, date := range days {
		d, ok := s.Lookup(date)
		if !ok {
			fmt.Fprintf(w, "\n%s  (no roster block)\n", date.Format("Mon 02.01.2006"))
			continue
		}
		seen[d] = true
		printDay(w, d)
	}

	for _, d := range s.Days {
		if seen[d] {
			continue
		}
		fmt.Fprintf(w, "\noutside week range:")
		printDay(w, d)
	}
}

func printDay(w io.Writer, d *model.DaySchedule) {
	fmt.Fprintf(w, "\n%s %s\n", d.Date.Format("Mon 02.01.2006"), d.Weekday)
	if len(d.Events) == 0 {
		fmt.Fprintln(w, "  (no events)")
		return
	}
	for _, ev := range d.Events {
		fmt.Fprintf(w, "  %s  %s\n", timeSpan(ev), ev.Label)
	}
}

func timeSpan(ev model.ScheduleEvent) string {
	if ev.IsAllDay() {
		return "all day    "
	}
	return ev.Start.Format("15:04") + "-" + ev.End.Format("15:04")
}
