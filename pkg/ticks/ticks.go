// Package ticks generates evenly spaced axis tick positions with exact
// fractional labels ready for typeset (LaTeX-style) display.
package ticks

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// ErrInvalidTickCount is returned when fewer than two ticks are requested.
var ErrInvalidTickCount = errors.New("ticks: count must be at least 2")

// DefaultMinorDivisions is the number of subdivisions Minor applies between
// adjacent major ticks when none is given.
const DefaultMinorDivisions = 4

type config struct {
	count   int
	divisor float64
	symbol  string
	digits  int
}

// Option configures tick generation.
type Option func(*config)

// WithCount sets the number of ticks, endpoints included. Default 10.
func WithCount(n int) Option {
	return func(c *config) { c.count = n }
}

// WithDivisor scales the interval into units of div before labelling, so
// that positions stay in data coordinates while labels read in units of the
// divisor. div must be nonzero. Default 1.
func WithDivisor(div float64) Option {
	return func(c *config) { c.divisor = div }
}

// WithSymbol attaches a typeset symbol (e.g. `\pi`) to the labels; fractions
// are rendered as coefficients of the symbol.
func WithSymbol(s string) Option {
	return func(c *config) { c.symbol = s }
}

// WithDigits sets the number of decimal digits the interval bounds are
// rounded to before exact-rational conversion. Default 5.
func WithDigits(d int) Option {
	return func(c *config) { c.digits = d }
}

// Labels divides [start/div, stop/div] into count evenly spaced
// exact-rational steps and returns the tick positions in data coordinates
// together with their typeset labels.
//
// All arithmetic after the initial rounding is exact, so equal values always
// produce identical labels regardless of how they were reached.
func Labels(start, stop float64, opts ...Option) ([]float64, []string, error) {
	cfg := config{count: 10, divisor: 1, digits: 5}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.count < 2 {
		return nil, nil, ErrInvalidTickCount
	}
	if cfg.divisor == 0 {
		return nil, nil, errors.New("ticks: divisor must be nonzero")
	}

	a := decimalRat(start/cfg.divisor, cfg.digits)
	b := decimalRat(stop/cfg.divisor, cfg.digits)

	// step = (b - a) / (count - 1)
	step := new(big.Rat).Sub(b, a)
	step.Quo(step, new(big.Rat).SetInt64(int64(cfg.count-1)))

	positions := make([]float64, cfg.count)
	labels := make([]string, cfg.count)
	for i := 0; i < cfg.count; i++ {
		f := new(big.Rat).Mul(step, new(big.Rat).SetInt64(int64(i)))
		f.Add(f, a)
		v, _ := f.Float64()
		positions[i] = cfg.divisor * v
		labels[i] = label(f, cfg.symbol)
	}
	return positions, labels, nil
}

// label renders an exact rational as a typeset tick label, folding in the
// divisor symbol when one is set.
func label(f *big.Rat, symbol string) string {
	if symbol == "" || f.Sign() == 0 {
		return "$" + f.RatString() + "$"
	}

	num := f.Num()
	den := f.Denom()
	if den.IsInt64() && den.Int64() == 1 {
		switch {
		case num.IsInt64() && num.Int64() == 1:
			return "$" + symbol + "$"
		case num.IsInt64() && num.Int64() == -1:
			return "$-" + symbol + "$"
		default:
			return fmt.Sprintf("$%s%s$", num.String(), symbol)
		}
	}
	if new(big.Int).Abs(num).IsInt64() && new(big.Int).Abs(num).Int64() == 1 {
		if f.Sign() > 0 {
			return fmt.Sprintf("$%s/%s$", symbol, den.String())
		}
		return fmt.Sprintf("$-%s/%s$", symbol, den.String())
	}
	return fmt.Sprintf("$%s%s/%s$", num.String(), symbol, den.String())
}

// decimalRat rounds x to digits decimal places and returns the result as an
// exact rational in lowest terms.
func decimalRat(x float64, digits int) *big.Rat {
	if digits < 0 {
		digits = 0
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(x, 'f', digits, 64))
	if !ok {
		// FormatFloat with the 'f' verb always yields a parseable decimal.
		return new(big.Rat)
	}
	return r
}

// Minor returns the minor tick positions obtained by splitting each interval
// between adjacent major ticks into n equal parts. n < 1 selects
// DefaultMinorDivisions. The major positions themselves are not included.
func Minor(major []float64, n int) []float64 {
	if n < 1 {
		n = DefaultMinorDivisions
	}
	if len(major) < 2 || n == 1 {
		return nil
	}
	minor := make([]float64, 0, (len(major)-1)*(n-1))
	for i := 0; i < len(major)-1; i++ {
		step := (major[i+1] - major[i]) / float64(n)
		for j := 1; j < n; j++ {
			minor = append(minor, major[i]+float64(j)*step)
		}
	}
	return minor
}
