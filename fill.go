package recoplot

// Filler1D is a one dimensional histogram. *hbook.H1D satisfies it.
type Filler1D interface {
	Fill(x, w float64)
}

// Filler2D is a two dimensional histogram. *hbook.H2D satisfies it.
type Filler2D interface {
	Fill(x, y, w float64)
}

// sum adds up f over recs in float32.
func sum[T any](recs []*T, f func(T) float32) float32 {
	var total float32
	for _, r := range recs {
		total += f(*r)
	}
	return total
}
