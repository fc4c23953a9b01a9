package recoplot

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinningFlag(t *testing.T) {
	var b Binning
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(BinningFlag{&b}, "bins", "")

	require.NoError(t, fs.Parse([]string{"-bins", "50, -2.5, 4"}))
	assert.Equal(t, Binning{N: 50, Low: -2.5, High: 4}, b)
	assert.Equal(t, "50,-2.5,4", BinningFlag{&b}.String())

	for _, bad := range []string{"50", "x,0,1", "10,a,1", "10,0,b", "0,0,1", "10,1,1", "1,2,3,4"} {
		assert.Error(t, BinningFlag{&b}.Set(bad), bad)
	}
	assert.Equal(t, Binning{N: 50, Low: -2.5, High: 4}, b)
	assert.Equal(t, "", BinningFlag{}.String())
}
