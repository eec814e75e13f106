package main

import (
	"benritz/bondcalc/internal/batch"
	"benritz/bondcalc/internal/recorder"
	"benritz/bondcalc/internal/render"
	"benritz/bondcalc/internal/store"
	"benritz/bondcalc/internal/types"

	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func newPriceCmd(a *app) *cobra.Command {
	var yield float64

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Convert a required yield to a clean price",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("yield") {
				yield = a.cfg.Assumptions.RequiredYield
			}

			price, err := a.terms().Price(yield / 100)
			if err != nil {
				return err
			}

			a.record(a.rec.RecordPrice(&recorder.PriceEvent{Terms: a.terms(), Yield: yield, Price: price}))

			fmt.Fprintf(cmd.OutOrStdout(), "Bond Price at Required Yield %g%%: %s\n", yield, render.FormatPrice(price))
			return nil
		},
	}

	cmd.Flags().Float64Var(&yield, "yield", 0, "required yield (%)")

	return cmd
}

func newYieldCmd(a *app) *cobra.Command {
	var price float64

	cmd := &cobra.Command{
		Use:   "yield",
		Short: "Solve the yield to maturity of a clean price",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("price") {
				price = a.cfg.Assumptions.BondPrice
			}

			y, err := types.SolveYield(a.terms(), price)
			if err != nil {
				return err
			}

			a.record(a.rec.RecordPrice(&recorder.PriceEvent{Terms: a.terms(), Yield: y * 100, Price: price}))

			fmt.Fprintf(cmd.OutOrStdout(), "Yield to Maturity at Price %s: %.6f%%\n", render.FormatPrice(price), y*100)
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "clean price of the bond")

	return cmd
}

func newReturnCmd(a *app) *cobra.Command {
	var (
		price          float64
		reinvestment   float64
		horizon        float64
		projectedYield float64
		toMaturity     bool
	)

	cmd := &cobra.Command{
		Use:   "return",
		Short: "Calculate the total return over an investment horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			assumptions := a.cfg.Assumptions
			if !flags.Changed("price") {
				price = assumptions.BondPrice
			}
			if !flags.Changed("reinvestment") {
				reinvestment = assumptions.Reinvestment
			}
			if !flags.Changed("horizon") {
				horizon = assumptions.Horizon
			}
			if !flags.Changed("projected-yield") {
				projectedYield = assumptions.ProjectedYield
			}

			terms := a.terms()

			var (
				res types.ReturnResult
				err error
			)
			if toMaturity {
				horizon = float64(terms.MaturityYears)
				res, err = types.HoldToMaturityReturn(price, terms.CouponRate, terms.Frequency, reinvestment/100, terms.Par, terms.MaturityYears)
			} else {
				res, err = terms.TotalReturn(price, reinvestment/100, horizon, projectedYield/100)
			}
			if err != nil {
				return err
			}

			a.record(a.rec.RecordReturn(&recorder.ReturnEvent{
				Terms:          terms,
				BondPrice:      price,
				Reinvestment:   reinvestment,
				Horizon:        horizon,
				ProjectedYield: projectedYield,
				Result:         res,
			}))

			return render.WriteReturn(cmd.OutOrStdout(), res)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&price, "price", 0, "purchase price of the bond")
	flags.Float64Var(&reinvestment, "reinvestment", 0, "coupon reinvestment rate (%)")
	flags.Float64Var(&horizon, "horizon", 0, "investment horizon (years)")
	flags.Float64Var(&projectedYield, "projected-yield", 0, "yield projected at the horizon (%)")
	flags.BoolVar(&toMaturity, "to-maturity", false, "hold until redemption at par")

	return cmd
}

func newScheduleCmd(a *app) *cobra.Command {
	var (
		startStr string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate the payment schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate(startStr)
			if err != nil {
				return fmt.Errorf("invalid start date: %v", err)
			}

			if !cmd.Flags().Changed("output") {
				output = a.cfg.Output.Destination
			}

			s, err := store.NewSchedule(a.terms(), start)
			if err != nil {
				return err
			}

			if err := render.WriteSchedule(cmd.OutOrStdout(), s.Flows); err != nil {
				return err
			}

			if output == "" {
				return nil
			}

			var client store.PutObjectAPI
			if _, err := store.ParseS3(output); err == nil {
				c, err := a.s3Client(cmd.Context())
				if err != nil {
					return err
				}
				client = c
			}

			outPath, err := store.Store(cmd.Context(), s, client, output)
			if err != nil {
				return fmt.Errorf("failed to store schedule: %v", err)
			}

			a.record(a.rec.RecordSchedule(&recorder.ScheduleEvent{
				RunID:    s.RunID,
				Terms:    s.Terms,
				Payments: len(s.Flows),
				Location: outPath,
			}))

			log.Printf("[INFO] stored schedule to %s", outPath)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&startStr, "start", "", "start date (YYYY-MM-DD), defaults to today")
	flags.StringVar(&output, "output", "", "directory or s3:// URL to store the schedule as parquet")

	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "batch <workbook>",
		Short:       "Price every bond listed in an xls or xlsx workbook",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{noTerms: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			priced, err := batch.PriceWorkbook(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-20s %-15s %-15s\n", "Bond", "Yield", "Price")
			for _, pb := range priced.Bonds {
				a.record(a.rec.RecordPrice(&recorder.PriceEvent{Terms: pb.Terms, Yield: pb.Yield, Price: pb.Price}))
				fmt.Fprintf(out, "%-20s %-15s %s\n", pb.Name, render.FormatPercent(pb.Yield), render.FormatPrice(pb.Price))
			}

			for _, pb := range priced.Failures {
				log.Printf("[WARN] row %d (%s): %v", pb.Row, pb.Name, pb.Err)
			}

			return nil
		},
	}
}
