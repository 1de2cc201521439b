package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/spot-atlas/pkg/adapters"
	"github.com/de-tools/spot-atlas/pkg/services/realised"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type RealisedCmd struct {
	workbook string
	tariff   string
	reporter ReporterFactory
}

func NewRealisedCmd(reporter ReporterFactory) *cobra.Command {
	rc := &RealisedCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "realised",
		Short: "Weighted day-ahead prices per TDD from a coefficient workbook",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.workbook, "workbook", "", "Path to the xlsx workbook with a \"koef TDD\" sheet")
	cmd.Flags().StringVar(&rc.tariff, "tariff", "", "TDD code to break down by month (e.g., TDD4)")

	_ = cmd.MarkFlagRequired("workbook")

	return cmd
}

func (rc *RealisedCmd) run(cmd *cobra.Command, _ []string) error {
	summary, err := realised.LoadWorkbook(rc.workbook)
	if err != nil {
		return fmt.Errorf("failed to summarise workbook: %w", err)
	}

	tariff := strings.ToUpper(strings.TrimSpace(rc.tariff))
	if _, ok := summary.Yearly[tariff]; tariff != "" && !ok {
		return fmt.Errorf("tariff %q not found in workbook, available: %v", tariff, summary.Tariffs())
	}

	zerolog.Ctx(cmd.Context()).Debug().
		Str("workbook", rc.workbook).
		Int("tariffs", len(summary.Yearly)).
		Msg("workbook summarised")

	return rc.reporter().Handle(adapters.MapRealisedSummaryToReport(summary, tariff))
}
