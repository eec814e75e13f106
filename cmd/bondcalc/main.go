package main

import (
	"benritz/bondcalc/internal/config"
	"benritz/bondcalc/internal/recorder"
	"benritz/bondcalc/internal/types"

	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"
)

// noTerms marks a subcommand that does not use the bond term flags.
const noTerms = "no-terms"

// app holds what every subcommand needs once the config is loaded.
type app struct {
	cfgPath string
	cfg     *config.Config
	rec     recorder.Recorder

	par       float64
	maturity  int
	coupon    float64
	frequency int
}

func getAwsConfig(ctx context.Context, profile string) (aws.Config, error) {
	if profile == "default" {
		return awsconfig.LoadDefaultConfig(ctx)
	}
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithSharedConfigProfile(profile))
}

func (a *app) s3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := getAwsConfig(ctx, a.cfg.Output.AWSProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", s)
}

// load reads the config and fills in any bond term flag that was not set.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("par") {
		a.par = cfg.Bond.Par
	}
	if !flags.Changed("maturity") {
		a.maturity = cfg.Bond.Maturity
	}
	if !flags.Changed("coupon") {
		a.coupon = cfg.Bond.Coupon
	}
	if !flags.Changed("frequency") {
		a.frequency = cfg.Bond.Frequency
	}

	if _, skip := cmd.Annotations[noTerms]; !skip {
		if err := a.terms().Validate(); err != nil {
			return err
		}
	}

	if cfg.Database.SQLitePath == "" {
		a.rec = recorder.NewNoopRecorder()
		return nil
	}

	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		a.rec = recorder.NewNoopRecorder()
	} else {
		a.rec = sr
	}

	return nil
}

func (a *app) close() {
	if a.rec == nil {
		return
	}
	if err := a.rec.Close(); err != nil {
		log.Printf("[WARN] close recorder: %v", err)
	}
}

func (a *app) terms() *types.BondTerms {
	return types.NewBondTerms(a.par, a.maturity, a.coupon, a.frequency)
}

func (a *app) record(err error) {
	if err != nil {
		log.Printf("[WARN] %v", err)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	defaultPath := config.DefaultPath
	if v := os.Getenv(config.ENV_CONFIG_PATH); v != "" {
		defaultPath = v
	}

	root := &cobra.Command{
		Use:           "bondcalc",
		Short:         "Bond price, total return and payment schedule calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", defaultPath, "path to the YAML config file")
	pf.Float64Var(&a.par, "par", 0, "par amount of the bond")
	pf.IntVar(&a.maturity, "maturity", 0, "maturity in years")
	pf.Float64Var(&a.coupon, "coupon", 0, "annual coupon rate (%)")
	pf.IntVar(&a.frequency, "frequency", 0, "payments per year (1, 2, 4 or 12)")

	root.AddCommand(
		newPriceCmd(a),
		newYieldCmd(a),
		newReturnCmd(a),
		newScheduleCmd(a),
		newBatchCmd(a),
	)

	return root
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
