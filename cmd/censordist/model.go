package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-censored/stats"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// A model describes a double interval censored delay distribution.
// Distributions are written family:p1,p2,..., for example "gamma:2,1".
type model struct {
	Delay       string    `yaml:"delay"`
	Primary     string    `yaml:"primary"`
	Lower       float64   `yaml:"lower"`
	Upper       float64   `yaml:"upper"`
	Interval    float64   `yaml:"interval"`
	Breakpoints []float64 `yaml:"breakpoints"`
}

// loadModel decodes a YAML model from r. Unknown keys are an error.
func loadModel(r io.Reader) (model, error) {
	var m model
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return model{}, errors.Wrap(err, "decoding model")
	}
	return m, nil
}

func (m model) build() (stats.DoubleIntervalCensored, error) {
	if m.Delay == "" {
		return stats.DoubleIntervalCensored{}, errors.New("no delay distribution")
	}
	delay, err := parseDist(m.Delay)
	if err != nil {
		return stats.DoubleIntervalCensored{}, errors.Wrap(err, "delay")
	}
	opts := stats.DoubleCensorOptions{
		Lower:       m.Lower,
		Upper:       m.Upper,
		Interval:    m.Interval,
		Breakpoints: m.Breakpoints,
	}
	if m.Primary != "" {
		if opts.Primary, err = parseDist(m.Primary); err != nil {
			return stats.DoubleIntervalCensored{}, errors.Wrap(err, "primary")
		}
	}
	return stats.NewDoubleIntervalCensored(delay, opts)
}

var families = map[string]struct {
	nparams int
	make    func(p []float64) stats.Dist
}{
	"normal":      {2, func(p []float64) stats.Dist { return stats.Normal{Mu: p[0], Sigma: p[1]} }},
	"exponential": {1, func(p []float64) stats.Dist { return stats.Exponential{Rate: p[0]} }},
	"uniform":     {2, func(p []float64) stats.Dist { return stats.Uniform{Min: p[0], Max: p[1]} }},
	"gamma":       {2, func(p []float64) stats.Dist { return stats.Gamma{Shape: p[0], Rate: p[1]} }},
	"lognormal":   {2, func(p []float64) stats.Dist { return stats.LogNormal{Mu: p[0], Sigma: p[1]} }},
	"weibull":     {2, func(p []float64) stats.Dist { return stats.Weibull{K: p[0], Lambda: p[1]} }},
	"expgrowth":   {3, func(p []float64) stats.Dist { return stats.ExpGrowth{Min: p[0], Max: p[1], R: p[2]} }},
}

// parseDist parses a distribution written as family:p1,p2,....
func parseDist(s string) (stats.Dist, error) {
	name, args, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.Newf("%q: want family:params", s)
	}
	fam, ok := families[strings.ToLower(name)]
	if !ok {
		return nil, errors.Newf("%q: unknown distribution family %q", s, name)
	}
	ps, err := parseFloats(args)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", s)
	}
	if len(ps) != fam.nparams {
		return nil, errors.Newf("%q: %s takes %d parameters, got %d", s, name, fam.nparams, len(ps))
	}
	return fam.make(ps), nil
}

// parseFloats parses a comma-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var xs []float64
	for _, f := range strings.Split(s, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}
