package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dienstplan/internal/config"
	"dienstplan/internal/ics"
	"dienstplan/internal/model"
	"dienstplan/internal/ocrtext"
	"dienstplan/internal/roster"
)

func newConvertCmd(a *app) *cobra.Command {
	var input, output, person string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Extract the roster and write the iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input != "" {
				a.conf.Input = input
			}
			if output != "" {
				a.conf.Output = output
			}
			if person != "" {
				a.conf.Person = person
			}

			schedule, loc, err := loadSchedule(a.conf)
			if err != nil {
				return err
			}

			opts := ics.WriteOptions{
				ProductID:    a.conf.ProductID,
				CalendarName: a.conf.CalendarName,
				Timezone:     loc.String(),
			}
			if err := ics.WriteFile(a.conf.Output, schedule, opts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ICS file '%s' generated successfully.\n", a.conf.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "OCR text file (default "+config.DefaultInput+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "iCalendar file to write (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&person, "person", "", `restrict the "<Surname>, <Givenname> Frei" marker to this name`)
	return cmd
}

// loadSchedule runs read → anchor → segment → extract for conf.Input.
func loadSchedule(conf *config.Config) (*model.Schedule, *time.Location, error) {
	loc, err := conf.Location()
	if err != nil {
		return nil, nil, err
	}

	text, err := ocrtext.Read(conf.Input, ocrtext.Options{
		Encoding:       conf.Encoding,
		RepairMojibake: conf.RepairMojibake,
	})
	if err != nil {
		return nil, nil, err
	}

	parser := roster.NewParser(
		roster.WithLocation(loc),
		roster.WithPerson(conf.Person),
	)
	schedule, err := parser.Parse(text)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", conf.Input, err)
	}
	return schedule, loc, nil
}
