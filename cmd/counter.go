package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"everest-finance/domain"
	"everest-finance/service"
)

var counterReq domain.CounterRequest

var counterCmd = &cobra.Command{
	Use:   "counter <target>",
	Short: "Print the frames of an animated counter",
	Long: `Print the frames a counter animating from zero to <target> would show.

Targets may be plain numbers ("+8.6"), percentages ("+8.6%") or currency
shorthand ("124,5 M FCFA"); anything else is shown unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		counterReq.Target = args[0]
		preview, err := service.NewCounterService().Frames(counterReq)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s (%s)\n", preview.Target, preview.Kind)
		for _, f := range preview.Frames {
			fmt.Fprintln(out, f)
		}
		return nil
	},
}

func init() {
	counterCmd.Flags().IntVar(&counterReq.Frames, "frames", service.DefaultCounterFrames, "number of frames to print")
	counterCmd.Flags().IntVar(&counterReq.DurationMs, "duration", service.DefaultCounterDurationMs, "animation duration in milliseconds")
}
