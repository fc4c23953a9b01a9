package main

import (
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/recoplot"
)

type figure struct {
	name   string
	xLabel string
	yLabel string
	plot   plot.Plotter
}

func h1(name, xLabel string, h *hbook.H1D) figure {
	hp := hplot.NewH1D(h)
	hp.Infos.Style = hplot.HInfoSummary
	return figure{name: name, xLabel: xLabel, yLabel: "entries", plot: hp}
}

func h2(name, xLabel, yLabel string, h *hbook.H2D) figure {
	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(0)
	colorMap.SetMax(1)
	return figure{name: name, xLabel: xLabel, yLabel: yLabel, plot: hplot.NewH2D(h, colorMap.Palette(255))}
}

func render(histos *recoplot.Histos, title, prefix string) error {
	figures := []figure{
		h1("nparticles", "particles per truth record", histos.NParticles),
		h1("vtx_x", "vertex x", histos.VtxX),
		h1("vtx_y", "vertex y", histos.VtxY),
		h1("vtx_z", "vertex z", histos.VtxZ),
		h2("vtx_xy", "vertex x", "vertex y", histos.VtxXY),
		h2("vtx_clusters", "clusters per vertex", "summed cluster ADC", histos.VtxClusters),
		h2("cluster_hits", "cluster summed ADC", "summed hit integral", histos.ClusterHits),
		h2("cluster_hits_grouped", "cluster summed ADC", "summed hit integral", histos.ClusterHitsGrouped),
	}

	for _, fig := range figures {
		p, err := plot.New()
		if err != nil {
			return err
		}
		p.Title.Text = title
		p.X.Label.Text = fig.xLabel
		p.Y.Label.Text = fig.yLabel
		p.X.Tick.Marker = recoplot.PreciseTicks{NSuggestedTicks: 5}
		p.Y.Tick.Marker = recoplot.PreciseTicks{NSuggestedTicks: 5}
		p.Add(fig.plot)

		if err := p.Save(6*vg.Inch, 4*vg.Inch, prefix+"_"+fig.name+".png"); err != nil {
			return err
		}
	}
	return nil
}
