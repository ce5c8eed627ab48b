package main

import (
	"io"

	"github.com/spf13/cobra"
)

type options struct {
	bags          int
	returnTrip    bool
	arrival       string
	returnArrival string
	departure     string
	configPath    string
	format        string
	workers       int
	metricsFile   string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "flight-search [dataset] origin destination",
		Short: "Find every flight itinerary between two airports, cheapest first",
		Long: `flight-search reads a flight catalog and prints every combination of legs
that connects origin to destination, honoring the requested bag count and
time bounds. Layovers must be longer than one hour and shorter than six.

The dataset is a CSV file path or a postgres:// URL of a seeded database.
It may be omitted when database.url is configured.
Timestamps use the layout YYYY-MM-DDTHH:MM:SS and are read as UTC.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return usageErrorf("expected 3 arguments (dataset origin destination), got %d", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, stdout)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	f := cmd.Flags()
	f.IntVar(&opts.bags, "bags", 0, "number of requested bags")
	f.BoolVar(&opts.returnTrip, "return", false, "also search flights back from destination to origin")
	f.StringVar(&opts.arrival, "arrival", "", "soonest arrival at the destination (YYYY-MM-DDTHH:MM:SS)")
	f.StringVar(&opts.returnArrival, "returnarrival", "", "soonest arrival back at the origin, return trips only")
	f.StringVar(&opts.departure, "departure", "", "soonest departure from any airport (YYYY-MM-DDTHH:MM:SS)")
	f.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	f.StringVar(&opts.format, "format", "", "output format: json or yaml (overrides search.output_format)")
	f.IntVar(&opts.workers, "workers", 0, "seed branches searched concurrently (overrides search.workers)")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this path")

	return cmd
}
