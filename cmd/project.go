package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"everest-finance/display"
	"everest-finance/domain"
	"everest-finance/repository"
	"everest-finance/service"
)

var (
	projectReq      domain.ProjectionRequest
	projectJSON     bool
	projectSchedule bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project an investment over time",
	Args:  cobra.NoArgs,
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().Float64Var(&projectReq.InitialAmount, "initial", 1_000_000, "initial amount (FCFA)")
	projectCmd.Flags().Float64Var(&projectReq.MonthlyContribution, "monthly", 0, "monthly contribution (FCFA)")
	projectCmd.Flags().IntVar(&projectReq.TimeHorizonYears, "years", 5, "time horizon in years")
	projectCmd.Flags().Float64Var(&projectReq.ExpectedAnnualReturn, "return", 0.08, "expected annual return, as a fraction")
	projectCmd.Flags().StringVar(&projectReq.TierID, "tier", "standard", "service tier id")
	projectCmd.Flags().BoolVar(&projectJSON, "json", false, "print JSON")
	projectCmd.Flags().BoolVar(&projectSchedule, "schedule", false, "include the year-by-year schedule")
}

func runProject(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	tiers, err := loadTiers(cfg)
	if err != nil {
		return err
	}

	projections := service.NewProjectionService(
		repository.NewProjectionRepositoryMemory(1),
		repository.NewMemoryCache(),
		tiers,
		0,
		logger,
	)

	ctx := cmd.Context()
	result, err := projections.Calculate(ctx, projectReq)
	if err != nil {
		return err
	}

	var points []domain.YearPoint
	if projectSchedule {
		if points, err = service.NewScheduleService(projections).Yearly(ctx, projectReq); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if projectJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Result   domain.ProjectionResult `json:"result"`
			Schedule []domain.YearPoint      `json:"schedule,omitempty"`
		}{result, points})
	}

	printProjection(out, result, points)
	return nil
}

func printProjection(out io.Writer, r domain.ProjectionResult, points []domain.YearPoint) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total investi\t%s\n", display.FormatAmount(r.TotalInvested))
	fmt.Fprintf(tw, "Valeur projetée\t%s\n", display.FormatAmount(r.ProjectedValue))
	fmt.Fprintf(tw, "Frais estimés\t%s\t(taux minimum %.2f %%)\n", display.FormatAmount(r.TotalFees), r.FeeRate*100)
	fmt.Fprintf(tw, "Gain brut\t%s\n", display.FormatAmount(r.TotalReturn))
	fmt.Fprintf(tw, "Gain net\t%s\n", display.FormatAmount(r.NetReturn))

	if len(points) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Année\tInvesti\tValeur\tFrais\tGain net")
		for _, p := range points {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				p.Year,
				display.FormatAmount(p.TotalInvested),
				display.FormatAmount(p.ProjectedValue),
				display.FormatAmount(p.TotalFees),
				display.FormatAmount(p.NetReturn),
			)
		}
	}
	tw.Flush()
}
