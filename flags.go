package recoplot

import (
	"fmt"
	"strconv"
	"strings"
)

// Binning is a fixed, uniform histogram axis.
type Binning struct {
	N         int
	Low, High float64
}

func (b Binning) String() string {
	return fmt.Sprintf("%d,%g,%g", b.N, b.Low, b.High)
}

// BinningFlag is a flag.Value accepting "nbins,low,high".
type BinningFlag struct {
	*Binning
}

func (f BinningFlag) Set(valueStr string) error {
	fields := strings.Split(valueStr, ",")
	if len(fields) != 3 {
		return fmt.Errorf("binning %q: want nbins,low,high", valueStr)
	}

	n, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return err
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return err
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return err
	}

	if n <= 0 {
		return fmt.Errorf("binning %q: number of bins must be positive", valueStr)
	}
	if high <= low {
		return fmt.Errorf("binning %q: empty range", valueStr)
	}

	*f.Binning = Binning{N: n, Low: low, High: high}
	return nil
}

func (f BinningFlag) String() string {
	if f.Binning == nil {
		return ""
	}
	return f.Binning.String()
}
