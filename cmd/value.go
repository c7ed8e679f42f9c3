package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/epeers/portfoliocalc/internal/services"
	"github.com/epeers/portfoliocalc/internal/util"
	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:   "value <investorId> [date]",
	Short: "Print one investor's valuation breakdown as JSON",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		on := util.Today()
		if len(args) == 2 {
			d, err := util.ParseDate(args[1])
			if err != nil {
				return err
			}
			on = d
		}

		valuationSvc, err := loadValuation(cmd.Context())
		if err != nil {
			return err
		}
		return writeValuation(cmd, valuationSvc, args[0], on)
	},
}

func writeValuation(cmd *cobra.Command, valuationSvc *services.ValuationService, investorID string, on time.Time) error {
	ctx, wc := services.NewWarningContext(cmd.Context())
	v := valuationSvc.Breakdown(ctx, investorID, on)
	v.Warnings = wc.GetWarnings()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write valuation: %w", err)
	}
	return nil
}
