// censordist evaluates or samples a double interval censored delay
// distribution.
//
// With no -n flag, it reads newline-separated values of x from stdin
// and prints the density (or bin mass), CDF, log CDF and log CCDF at
// each. With -n, it prints n samples.
//
// The model is given by flags or by a YAML file (-model) with the keys
// delay, primary, lower, upper, interval and breakpoints. Flags given
// alongside -model override the file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-censored/stats"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

func main() {
	var (
		m         model
		breaks    string
		modelFile = flag.String("model", "", "read the model from YAML `file`")
		n         = flag.Int("n", 0, "print `n` samples instead of evaluating stdin")
		seed      = flag.Int64("seed", 1, "random seed for -n")
		verbose   = flag.Bool("v", false, "log numerical diagnostics to stderr")
	)
	flag.StringVar(&m.Delay, "delay", "", "delay `distribution`, e.g. gamma:2,1")
	flag.StringVar(&m.Primary, "primary", "uniform:0,1", "primary event `distribution`")
	flag.Float64Var(&m.Lower, "lower", 0, "lower truncation bound")
	flag.Float64Var(&m.Upper, "upper", 0, "upper truncation bound (0, 0 means no truncation)")
	flag.Float64Var(&m.Interval, "interval", 0, "discretization interval")
	flag.StringVar(&breaks, "breakpoints", "", "comma-separated discretization `edges`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] < xs\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
		stats.SetLogger(log)
	}

	var err error
	if m.Breakpoints, err = parseFloats(breaks); err != nil {
		log.Fatal().Err(err).Msg("bad -breakpoints")
	}
	if *modelFile != "" {
		m, err = overlay(*modelFile, m)
		if err != nil {
			log.Fatal().Err(err).Str("file", *modelFile).Msg("loading model")
		}
	}
	d, err := m.build()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid model")
	}
	min, max := d.Support()
	log.Debug().Floats64("params", d.Params()).Float64("min", min).Float64("max", max).Msg("model")

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	if *n > 0 {
		rng := rand.New(rand.NewSource(*seed))
		for _, x := range d.Sample(rng, *n) {
			fmt.Fprintf(w, "%.6g\n", x)
		}
		return
	}

	xs, err := readInput(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
	printTable(w, d, xs)
}

// overlay loads the model in file and replaces its fields with any
// model flags set on the command line.
func overlay(file string, flags model) (model, error) {
	f, err := os.Open(file)
	if err != nil {
		return model{}, err
	}
	defer f.Close()
	m, err := loadModel(f)
	if err != nil {
		return model{}, err
	}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "delay":
			m.Delay = flags.Delay
		case "primary":
			m.Primary = flags.Primary
		case "lower":
			m.Lower = flags.Lower
		case "upper":
			m.Upper = flags.Upper
		case "interval":
			m.Interval = flags.Interval
		case "breakpoints":
			m.Breakpoints = flags.Breakpoints
		}
	})
	return m, nil
}

func printTable(w io.Writer, d stats.DoubleIntervalCensored, xs []float64) {
	density := "pdf"
	if opts := d.Options(); opts.Interval != 0 || opts.Breakpoints != nil {
		density = "pmf"
	}
	cols := [][]float64{
		stats.Each(d.PMF, xs),
		stats.Each(d.CDF, xs),
		stats.Each(d.LogCDF, xs),
		stats.Each(d.LogCCDF, xs),
	}
	fmt.Fprintf(w, "%-12s %-12s %-12s %-12s %s\n", "x", density, "cdf", "logcdf", "logccdf")
	for i, x := range xs {
		fmt.Fprintf(w, "%-12.6g %-12.6g %-12.6g %-12.6g %.6g\n", x, cols[0][i], cols[1][i], cols[2][i], cols[3][i])
	}
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning")
	}
	return xs, nil
}
