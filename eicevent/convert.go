// Package eicevent turns proio events of the EIC data model into the
// record collections and association tables the analysis passes read.
package eicevent

import (
	"errors"
	"math"

	"github.com/golang/protobuf/proto"
	"github.com/proio-org/go-proio-pb/model/eic"

	"github.com/decibelcooper/recoplot"
	"github.com/decibelcooper/recoplot/record"
)

// EntrySource is the part of *proio.Event the conversion needs.
type EntrySource interface {
	TaggedEntries(tag string) []uint64
	GetEntry(id uint64) proto.Message
}

// Tags are the proio tags holding truth particles, reconstructed
// tracks and tracker energy deposits.
type Tags struct {
	Truth string
	Reco  string
	Hits  string
}

func DefaultTags() Tags {
	return Tags{
		Truth: "GenStable",
		Reco:  "Reconstructed",
		Hits:  "Tracker",
	}
}

// Convert reads one event from src and stores its records under the
// input tags of cfg.
func Convert(src EntrySource, tags Tags, cfg recoplot.Config) (*recoplot.MemEvent, error) {
	if tags.Truth == "" || tags.Reco == "" || tags.Hits == "" {
		return nil, errors.New("eicevent: empty proio tag")
	}

	c := converter{
		src:       src,
		particles: make(map[uint64]int),
		vtxIndex:  make(map[[3]float64]int),
		hitIndex:  make(map[uint64]int),
	}
	truth := c.truth(tags.Truth)
	hits := c.hits(tags.Hits)
	clusters, clusterHits := c.clusters(tags.Reco, hits)

	vtxClusters := recoplot.NewAssns[record.Vertex, record.Cluster, uint16](c.vertices, clusters)
	for i, m := range c.matches {
		if m.vertex >= 0 {
			vtxClusters.Add(m.vertex, i, m.nHits)
		}
	}
	vtxClusters.SortByLeft()

	ev := recoplot.NewMemEvent()
	ev.Put(cfg.MCTruths, []record.MCTruth{truth})
	ev.Put(cfg.Vertices, c.vertices)
	ev.Put(cfg.Clusters, clusters)
	ev.Put(cfg.Hits, hits)
	ev.Put(cfg.VertexClusterAssns, vtxClusters)
	ev.Put(cfg.ClusterHitAssns, clusterHits)
	return ev, nil
}

type match struct {
	vertex int
	nHits  uint16
}

type converter struct {
	src EntrySource

	particles map[uint64]int // entry ID to index in the truth record
	vertices  []record.Vertex
	vtxIndex  map[[3]float64]int
	partVtx   []int
	hitIndex  map[uint64]int // entry ID to index in the hit collection
	matches   []match
}

func (c *converter) truth(tag string) record.MCTruth {
	var truth record.MCTruth
	for _, id := range c.src.TaggedEntries(tag) {
		part, ok := c.src.GetEntry(id).(*eic.Particle)
		if !ok {
			continue
		}

		p := part.GetP()
		v := part.GetVertex()
		mcPart := record.MCParticle{
			PDG:    part.GetPdg(),
			Mass:   float64(part.GetMass()),
			Charge: float64(part.GetCharge()),
			P:      [3]float64{float64(p.GetX()), float64(p.GetY()), float64(p.GetZ())},
			Vertex: [3]float64{v.GetX(), v.GetY(), v.GetZ()},
		}

		c.particles[id] = len(truth.Particles)
		c.partVtx = append(c.partVtx, c.vertex(mcPart.Vertex))
		truth.Particles = append(truth.Particles, mcPart)
	}
	return truth
}

func (c *converter) vertex(pos [3]float64) int {
	if i, ok := c.vtxIndex[pos]; ok {
		return i
	}
	i := len(c.vertices)
	c.vtxIndex[pos] = i
	c.vertices = append(c.vertices, record.Vertex{ID: i, Pos: pos})
	return i
}

func (c *converter) hits(tag string) []record.Hit {
	var hits []record.Hit
	for _, id := range c.src.TaggedEntries(tag) {
		eDep, ok := c.src.GetEntry(id).(*eic.EnergyDep)
		if !ok {
			continue
		}

		c.hitIndex[id] = len(hits)
		hits = append(hits, record.Hit{
			Channel:  id,
			Integral: eDep.GetMean(),
		})
	}
	return hits
}

func (c *converter) clusters(tag string, hits []record.Hit) ([]record.Cluster, *recoplot.ClusterHitAssns) {
	var clusters []record.Cluster
	type assn struct{ cluster, hit int }
	var assns []assn

	for _, id := range c.src.TaggedEntries(tag) {
		track, ok := c.src.GetEntry(id).(*eic.Track)
		if !ok {
			continue
		}

		cluster := record.Cluster{ID: len(clusters)}
		for _, obsID := range track.GetObservation() {
			hit, ok := c.hitIndex[obsID]
			if !ok {
				continue
			}
			cluster.SummedADC += hits[hit].Integral
			cluster.NHits++
			assns = append(assns, assn{cluster.ID, hit})
		}

		c.matches = append(c.matches, c.match(track))
		clusters = append(clusters, cluster)
	}

	clusterHits := recoplot.NewAssns[record.Cluster, record.Hit, recoplot.NoData](clusters, hits)
	for _, a := range assns {
		clusterHits.Add(a.cluster, a.hit, recoplot.NoData{})
	}
	return clusters, clusterHits
}

// match finds the truth particle that left the most sim hits behind
// the track's observations and returns its production vertex.
func (c *converter) match(track *eic.Track) match {
	var (
		order  []uint64
		counts = make(map[uint64]int)
	)
	for _, obsID := range track.GetObservation() {
		eDep, ok := c.src.GetEntry(obsID).(*eic.EnergyDep)
		if !ok {
			continue
		}

		for _, sourceID := range eDep.GetSource() {
			simHit, ok := c.src.GetEntry(sourceID).(*eic.SimHit)
			if !ok {
				continue
			}

			partID := simHit.GetParticle()
			if counts[partID] == 0 {
				order = append(order, partID)
			}
			counts[partID]++
		}
	}

	best := match{vertex: -1}
	bestCount := 0
	for _, partID := range order {
		part, ok := c.particles[partID]
		if !ok || counts[partID] <= bestCount {
			continue
		}
		bestCount = counts[partID]
		best = match{vertex: c.partVtx[part], nHits: uint16(min(bestCount, math.MaxUint16))}
	}
	return best
}
