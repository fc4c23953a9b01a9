package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/proio-org/go-proio"

	"github.com/decibelcooper/recoplot"
	"github.com/decibelcooper/recoplot/eicevent"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <proio-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("recoana: ")
	log.SetFlags(0)

	cfg := recoplot.DefaultConfig()
	tags := eicevent.DefaultTags()

	var (
		title    = flag.String("title", "", "plot title")
		prefix   = flag.String("prefix", "out", "output file prefix")
		every    = flag.Int("every", 1000, "log progress every n events")
		doProf   = flag.Bool("profile", false, "write a CPU profile to the working directory")
		verbose  = flag.Bool("v", false, "log the products built from the first event of each file")
		truthTag = flag.String("truthtag", tags.Truth, "proio tag of truth particles")
		recoTag  = flag.String("recotag", tags.Reco, "proio tag of reconstructed tracks")
		hitTag   = flag.String("hittag", tags.Hits, "proio tag of tracker energy deposits")
	)
	flag.Var(recoplot.BinningFlag{Binning: &cfg.NParticles}, "npart", "particles per truth record binning `nbins,low,high`")
	flag.Var(recoplot.BinningFlag{Binning: &cfg.VtxX}, "vtxx", "vertex x binning `nbins,low,high`")
	flag.Var(recoplot.BinningFlag{Binning: &cfg.VtxY}, "vtxy", "vertex y binning `nbins,low,high`")
	flag.Var(recoplot.BinningFlag{Binning: &cfg.VtxZ}, "vtxz", "vertex z binning `nbins,low,high`")
	flag.Var(recoplot.BinningFlag{Binning: &cfg.NClusters}, "nclusters", "clusters per vertex binning `nbins,low,high`")
	flag.Var(recoplot.BinningFlag{Binning: &cfg.ClusterADC}, "adc", "cluster summed ADC binning `nbins,low,high`")
	flag.Var(recoplot.BinningFlag{Binning: &cfg.HitSum}, "hitsum", "summed hit integral binning `nbins,low,high`")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *doProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	tags = eicevent.Tags{Truth: *truthTag, Reco: *recoTag, Hits: *hitTag}
	histos := recoplot.NewHistos(cfg)

	for _, filename := range flag.Args() {
		if err := process(filename, tags, cfg, histos, *every, *verbose); err != nil {
			log.Fatalf("could not analyze %q: %+v", filename, err)
		}
	}
	log.Printf("analyzed %d events", histos.Events())

	if err := render(histos, *title, *prefix); err != nil {
		log.Fatalf("could not render histograms: %+v", err)
	}
}

func process(filename string, tags eicevent.Tags, cfg recoplot.Config, histos *recoplot.Histos, every int, verbose bool) error {
	reader, err := proio.Open(filename)
	if err != nil {
		return err
	}
	defer reader.Close()

	eventNum := 0
	for event := range reader.ScanEvents() {
		if every > 0 && eventNum%every == 0 {
			log.Printf("%s: processing event %d...", filename, eventNum)
		}

		ev, err := eicevent.Convert(event, tags, cfg)
		if err != nil {
			return fmt.Errorf("event %d: %w", eventNum, err)
		}
		if verbose && eventNum == 0 {
			for _, tag := range ev.Tags() {
				prod, _ := ev.Product(tag)
				log.Printf("%s: product %q: %T", filename, tag, prod)
			}
		}
		if err := histos.Analyze(ev); err != nil {
			return fmt.Errorf("event %d: %w", eventNum, err)
		}
		eventNum++
	}
	return nil
}
