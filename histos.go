package recoplot

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

// Config selects the input products and the binning of every
// histogram filled by Histos.
type Config struct {
	MCTruths           InputTag
	Vertices           InputTag
	Clusters           InputTag
	Hits               InputTag
	VertexClusterAssns InputTag
	ClusterHitAssns    InputTag

	NParticles Binning
	VtxX       Binning
	VtxY       Binning
	VtxZ       Binning
	NClusters  Binning
	ClusterADC Binning
	HitSum     Binning
}

func DefaultConfig() Config {
	return Config{
		MCTruths:           InputTag{Label: "generator"},
		Vertices:           InputTag{Label: "vertexfit"},
		Clusters:           InputTag{Label: "linecluster"},
		Hits:               InputTag{Label: "hitfinder"},
		VertexClusterAssns: InputTag{Label: "vertexfit", Instance: "clusters"},
		ClusterHitAssns:    InputTag{Label: "linecluster", Instance: "hits"},

		NParticles: Binning{N: 100, Low: 0, High: 100},
		VtxX:       Binning{N: 100, Low: -500, High: 500},
		VtxY:       Binning{N: 100, Low: -500, High: 500},
		VtxZ:       Binning{N: 100, Low: -500, High: 500},
		NClusters:  Binning{N: 20, Low: 0, High: 20},
		ClusterADC: Binning{N: 100, Low: 0, High: 1000},
		HitSum:     Binning{N: 100, Low: 0, High: 1000},
	}
}

// Histos is the set of histograms filled by the analysis passes.
type Histos struct {
	cfg    Config
	events int

	NParticles         *hbook.H1D
	VtxX               *hbook.H1D
	VtxY               *hbook.H1D
	VtxZ               *hbook.H1D
	VtxXY              *hbook.H2D
	VtxClusters        *hbook.H2D
	ClusterHits        *hbook.H2D
	ClusterHitsGrouped *hbook.H2D
}

func newH1D(b Binning) *hbook.H1D {
	return hbook.NewH1D(b.N, b.Low, b.High)
}

func newH2D(bx, by Binning) *hbook.H2D {
	return hbook.NewH2D(bx.N, bx.Low, bx.High, by.N, by.Low, by.High)
}

func NewHistos(cfg Config) *Histos {
	return &Histos{
		cfg:                cfg,
		NParticles:         newH1D(cfg.NParticles),
		VtxX:               newH1D(cfg.VtxX),
		VtxY:               newH1D(cfg.VtxY),
		VtxZ:               newH1D(cfg.VtxZ),
		VtxXY:              newH2D(cfg.VtxX, cfg.VtxY),
		VtxClusters:        newH2D(cfg.NClusters, cfg.ClusterADC),
		ClusterHits:        newH2D(cfg.ClusterADC, cfg.HitSum),
		ClusterHitsGrouped: newH2D(cfg.ClusterADC, cfg.HitSum),
	}
}

// Analyze runs every pass over ev. The first failing pass stops the
// event; histograms filled by earlier passes keep their entries.
func (h *Histos) Analyze(ev Event) error {
	passes := []struct {
		name string
		run  func() error
	}{
		{"mctruths", func() error {
			return AnalyzeMCTruths(ev, h.cfg.MCTruths, h.NParticles)
		}},
		{"vertices", func() error {
			return AnalyzeVertices(ev, h.cfg.Vertices, h.VtxX, h.VtxY, h.VtxZ, h.VtxXY)
		}},
		{"vertex/cluster", func() error {
			return AnalyzeVertexClusterCorrelations(ev, h.cfg.Vertices, h.cfg.VertexClusterAssns, h.VtxClusters)
		}},
		{"cluster/hit", func() error {
			return AnalyzeClusterHitCorrelations(ev, h.cfg.Clusters, h.cfg.ClusterHitAssns, h.ClusterHits)
		}},
		{"cluster/hit grouped", func() error {
			return AnalyzeClusterHitCorrelationsGrouped(ev, h.cfg.ClusterHitAssns, h.ClusterHitsGrouped)
		}},
	}

	for _, pass := range passes {
		if err := pass.run(); err != nil {
			return fmt.Errorf("%s pass: %w", pass.name, err)
		}
	}
	h.events++
	return nil
}

// Events is the number of events all passes completed on.
func (h *Histos) Events() int {
	return h.events
}
