package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rag-nar1/sized-bloom/bench"
	"github.com/rag-nar1/sized-bloom/metrics"
)

func main() {
	cfg := bench.DefaultConfig()

	var configPath, metricsFile string
	var development bool
	flag.StringVar(&configPath, "config", "", "YAML or JSON benchmark config; flags override its values.")
	flag.StringVar(&metricsFile, "metrics-textfile", "", "Write Prometheus metrics for the run to this file.")
	flag.BoolVar(&development, "dev", false, "Human readable debug logging.")
	flag.Float64Var(&cfg.FalsePositiveRate, "fp-rate", cfg.FalsePositiveRate, "Target false positive rate in (0, 1).")
	flag.Uint64Var(&cfg.MaxItems, "items", cfg.MaxItems, "Items to insert; also the filter capacity.")
	flag.Uint64Var(&cfg.Queries, "queries", cfg.Queries, "Never-inserted items to probe.")
	flag.StringVar(&cfg.Hash, "hash", cfg.Hash, "Hash family: murmur3, metro, xxh3 or city.")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "Item generator: random or uuid.")
	flag.IntVar(&cfg.ItemLength, "item-length", cfg.ItemLength, "Maximum length of random items.")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for item generation.")
	flag.Parse()

	zl, err := newZap(development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zl.Sync() //nolint:errcheck
	mainLog := zapr.NewLogger(zl).WithName("main")

	if configPath != "" {
		cfg, err = loadWithOverrides(configPath, cfg)
		if err != nil {
			mainLog.Error(err, "unable to load config")
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := bench.Run(ctx, cfg, mainLog.WithName("bench"))
	if err != nil {
		mainLog.Error(err, "benchmark failed")
		os.Exit(1)
	}
	printReport(report)

	if metricsFile != "" {
		if err := writeMetrics(metricsFile, report); err != nil {
			mainLog.Error(err, "unable to write metrics", "path", metricsFile)
			os.Exit(1)
		}
	}
	if report.FalseNegatives > 0 {
		os.Exit(2)
	}
}

func newZap(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadWithOverrides reads the config file and reapplies every flag set on the command line.
func loadWithOverrides(path string, fromFlags bench.Config) (bench.Config, error) {
	cfg, err := bench.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fp-rate":
			cfg.FalsePositiveRate = fromFlags.FalsePositiveRate
		case "items":
			cfg.MaxItems = fromFlags.MaxItems
		case "queries":
			cfg.Queries = fromFlags.Queries
		case "hash":
			cfg.Hash = fromFlags.Hash
		case "generator":
			cfg.Generator = fromFlags.Generator
		case "item-length":
			cfg.ItemLength = fromFlags.ItemLength
		case "seed":
			cfg.Seed = fromFlags.Seed
		}
	})
	return cfg, nil
}

func printReport(r *bench.Report) {
	bf := r.Filter
	fmt.Println("--------------------------------")
	fmt.Println("Bloom Filter Benchmark")
	fmt.Println("--------------------------------")
	fmt.Println("hash:", r.Config.Hash, "  generator:", r.Config.Generator)
	fmt.Println("filter size:", bf.Width()/8/1024, "KiB", "  number of hash functions:", bf.HashCount())
	fmt.Println("insert ops:", r.Inserted, "  distinct:", r.Distinct, "  lookups:", r.Inserted+r.Queries)
	fmt.Printf("false positives: %d  false negatives: %d\n", r.FalsePositives, r.FalseNegatives)
	fmt.Printf("observed fpr: %.4f%%  target: %.4f%%  estimated: %.4f%%\n",
		r.FalsePositiveRate()*100, r.Config.FalsePositiveRate*100, bf.EstimatedFalsePositiveRate()*100)
	fmt.Printf("insert: %.2f ns/op  contains: %.2f ns/op  fill: %.2f%%\n",
		r.InsertNsOp(), r.ContainsNsOp(), bf.FillRatio()*100)
}

func writeMetrics(path string, r *bench.Report) error {
	reg := prometheus.NewRegistry()
	name := r.Config.Hash
	reg.MustRegister(metrics.NewCollector(name, r.Filter))
	metrics.NewRunGauges(reg).Observe(name, r.FalsePositiveRate(), r.InsertNsOp(), r.ContainsNsOp())
	return prometheus.WriteToTextfile(path, reg)
}
