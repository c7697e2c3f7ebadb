package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wildfunctions/function_families/pkg/engine"
	"github.com/wildfunctions/function_families/pkg/recognize"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ", ") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// floatList parses a comma-separated list of numbers.
type floatList []float64

func (f *floatList) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *floatList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*f = append(*f, x)
	}
	return nil
}

func main() {
	cfg := engine.DefaultConfig()
	configPath := ""
	var exprs stringList
	var at floatList

	flag.StringVar(&configPath, "config", configPath, "YAML config file; flags given explicitly override it")
	flag.Var(&exprs, "expr", "expression to recognize (repeatable; positional arguments are appended)")
	flag.StringVar(&cfg.Family, "family", cfg.Family, "family ("+engine.FamilyAuto+", "+strings.Join(recognize.Names(), ", ")+")")
	flag.Float64Var(&cfg.XRange, "x", cfg.XRange, "x axis half-width")
	flag.Float64Var(&cfg.YRange, "y", cfg.YRange, "y axis half-width")
	flag.IntVar(&cfg.Points, "points", cfg.Points, "number of sampling intervals")
	flag.Var(&at, "at", "comma-separated x values to evaluate")
	flag.BoolVar(&cfg.Clip, "clip", cfg.Clip, "drop samples outside the y range")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format ("+strings.Join(engine.Formats, ", ")+")")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log progress to stderr")
	flag.Parse()

	cfg.Expressions = append(exprs, flag.Args()...)
	cfg.At = at

	if configPath != "" {
		var err error
		if cfg, err = overlayConfig(configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if len(cfg.Expressions) == 0 {
		fmt.Fprintln(os.Stderr, "error: no expression given")
		flag.Usage()
		os.Exit(2)
	}

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report, runErr := e.Run()

	switch cfg.Format {
	case "json":
		err = engine.WriteJSONFinal(os.Stdout, report)
	case "csv":
		err = engine.WriteCSV(os.Stdout, report)
	default:
		engine.WriteTextFinal(os.Stdout, report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", cfg.Format, err)
		os.Exit(1)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

// overlayConfig loads the file at path over the defaults, then reapplies the
// flags the user set explicitly.
func overlayConfig(path string, fromFlags engine.Config) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if err := engine.LoadConfig(path, &cfg); err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "expr":
			cfg.Expressions = nil
		case "family":
			cfg.Family = fromFlags.Family
		case "x":
			cfg.XRange = fromFlags.XRange
		case "y":
			cfg.YRange = fromFlags.YRange
		case "points":
			cfg.Points = fromFlags.Points
		case "at":
			cfg.At = fromFlags.At
		case "clip":
			cfg.Clip = fromFlags.Clip
		case "format":
			cfg.Format = fromFlags.Format
		case "verbose":
			cfg.Verbose = fromFlags.Verbose
		}
	})
	if len(fromFlags.Expressions) > 0 {
		cfg.Expressions = append(cfg.Expressions, fromFlags.Expressions...)
	}
	return cfg, nil
}
