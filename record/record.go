// Package record holds the event records the analysis passes read:
// generator truth, reconstructed vertices, clusters and hits.
package record

// MCParticle is one generated particle. Momentum is in GeV, positions
// in the units of the input data.
type MCParticle struct {
	PDG    int32
	Mass   float64
	Charge float64
	P      [3]float64
	Vertex [3]float64
}

// MCTruth is the output of one generator for one event.
type MCTruth struct {
	Particles []MCParticle
}

func (t MCTruth) NParticles() int {
	return len(t.Particles)
}

type Vertex struct {
	ID  int
	Pos [3]float64
}

func (v Vertex) XYZ() [3]float64 {
	return v.Pos
}

type Cluster struct {
	ID        int
	SummedADC float32
	NHits     int
}

type Hit struct {
	Channel  uint64
	Integral float32
}

func NParticles(t MCTruth) int { return t.NParticles() }
func VertexPos(v Vertex) [3]float64 { return v.XYZ() }
func SummedADC(c Cluster) float32 { return c.SummedADC }
func Integral(h Hit) float32 { return h.Integral }
