package recoplot

import (
	"github.com/decibelcooper/recoplot/record"
)

// NoData marks associations that carry no datum.
type NoData = struct{}

type (
	VertexClusterAssns = Assns[record.Vertex, record.Cluster, uint16]
	ClusterHitAssns    = Assns[record.Cluster, record.Hit, NoData]
)

// AnalyzeMCTruths fills h with the number of particles of each truth
// record.
func AnalyzeMCTruths(ev Event, tag InputTag, h Filler1D) error {
	truths, err := GetValid[[]record.MCTruth](ev, tag)
	if err != nil {
		return err
	}
	for _, truth := range truths {
		h.Fill(float64(record.NParticles(truth)), 1)
	}
	return nil
}

// AnalyzeVertices fills the coordinate histograms with the position of
// every vertex.
func AnalyzeVertices(ev Event, tag InputTag, xHist, yHist, zHist Filler1D, xyHist Filler2D) error {
	vertices, err := GetValid[[]record.Vertex](ev, tag)
	if err != nil {
		return err
	}
	for _, vtx := range vertices {
		pos := record.VertexPos(vtx)
		xHist.Fill(pos[0], 1)
		yHist.Fill(pos[1], 1)
		zHist.Fill(pos[2], 1)
		xyHist.Fill(pos[0], pos[1], 1)
	}
	return nil
}

// AnalyzeVertexClusterCorrelations fills h once per vertex with the
// number of associated clusters and their summed ADC.
func AnalyzeVertexClusterCorrelations(ev Event, vtxTag, assnsTag InputTag, h Filler2D) error {
	vertices, err := GetValid[[]record.Vertex](ev, vtxTag)
	if err != nil {
		return err
	}
	assns, err := GetValid[*VertexClusterAssns](ev, assnsTag)
	if err != nil {
		return err
	}
	clustersForVertex, err := NewFindMany(len(vertices), assns)
	if err != nil {
		return err
	}

	for i := range vertices {
		clusters, _ := clustersForVertex.At(i)
		adcSum := sum(clusters, record.SummedADC)
		h.Fill(float64(len(clusters)), float64(adcSum), 1)
	}
	return nil
}

// AnalyzeClusterHitCorrelations fills h once per cluster with its
// summed ADC and the summed integral of its hits.
func AnalyzeClusterHitCorrelations(ev Event, clTag, assnsTag InputTag, h Filler2D) error {
	clusters, err := GetValid[[]record.Cluster](ev, clTag)
	if err != nil {
		return err
	}
	assns, err := GetValid[*ClusterHitAssns](ev, assnsTag)
	if err != nil {
		return err
	}
	hitsForCluster, err := NewFindMany(len(clusters), assns)
	if err != nil {
		return err
	}

	for i, cluster := range clusters {
		hits, _ := hitsForCluster.At(i)
		h.Fill(float64(record.SummedADC(cluster)), float64(sum(hits, record.Integral)), 1)
	}
	return nil
}

// AnalyzeClusterHitCorrelationsGrouped fills the same quantity as
// AnalyzeClusterHitCorrelations, walking the flat association table
// instead of the cluster collection. Clusters without hits are not
// filled.
func AnalyzeClusterHitCorrelationsGrouped(ev Event, assnsTag InputTag, h Filler2D) error {
	assns, err := GetValid[*ClusterHitAssns](ev, assnsTag)
	if err != nil {
		return err
	}
	return assns.Groups(func(cluster *record.Cluster, hits []*record.Hit, _ []NoData) {
		h.Fill(float64(record.SummedADC(*cluster)), float64(sum(hits, record.Integral)), 1)
	})
}
