package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"trialstat/adapters/excel"
	"trialstat/app"
	appconfig "trialstat/internal/config"
)

func main() {
	// .env is optional; real environments set the variables directly
	_ = godotenv.Load()

	file := flag.String("file", "", "trial workbook (xlsx or csv); overrides TRIAL_FILE")
	flag.Parse()

	if *file != "" {
		os.Setenv("TRIAL_FILE", *file)
	}

	cfg, err := appconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	reader := excel.NewDataReader(cfg.Data.TrialFile, cfg.Data.Sheet)
	data, err := reader.ReadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}

	svc := app.NewAnalysisService(cfg.Analysis.MaxWorkers, cfg.Analysis.RunLSD)
	result, err := svc.RunSweep(context.Background(), app.SweepRequest{Sets: data.GroupSets()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
		os.Exit(1)
	}

	printSweep(result, cfg.Analysis.Alpha)
}

func printSweep(result *app.SweepResult, alpha float64) {
	fmt.Printf("sweep %s (%d ms)\n", result.SweepID, result.RuntimeMs)

	for _, r := range result.Results {
		fmt.Printf("\n=== %s ===\n", r.Parameter)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		fmt.Fprintln(w, "block\tn\tmean\tsd\tmin\tmax\tvs control")
		for _, s := range r.Summaries {
			label := ""
			if s.IsControl {
				label = "(control)"
			} else if s.PctDiffVsControl != 0 {
				label = fmt.Sprintf("%+.1f%%", s.PctDiffVsControl)
			}
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
				s.BlockCode, s.N, s.Mean, s.StdDev, s.Min, s.Max, label)
		}
		w.Flush()

		a := r.Anova
		fmt.Printf("\nANOVA: F=%.3f p=%.4g R2=%.3f", deref(a.Between.F), deref(a.Between.P), a.RSquared)
		if deref(a.Between.P) < alpha {
			fmt.Printf("  (significant at alpha=%.2g)", alpha)
		}
		fmt.Println()

		if len(r.Comparisons) > 0 {
			fmt.Println("LSD pairwise comparisons:")
			cw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(cw, "pair\tdiff\tse\tlsd\tp\tsignificant")
			for _, c := range r.Comparisons {
				fmt.Fprintf(cw, "%d-%d\t%.3f\t%.3f\t%.3f\t%.4g\t%v\n",
					c.GroupI, c.GroupJ, c.MeanDifference, c.StdError, c.LSD, c.PValue, c.IsSignificant)
			}
			cw.Flush()
		}
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
