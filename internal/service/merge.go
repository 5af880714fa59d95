package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"metamerge/internal/codec"
	"metamerge/internal/config"
	"metamerge/internal/core/merge"
	"metamerge/internal/domain"
	"metamerge/internal/loader"
)

// MergeRequest names the inputs and output of one merge run
type MergeRequest struct {
	ClustersPath   string
	MembershipPath string
	MetadataPath   string
	OutputPath     string
	Threshold      float64
}

// MergeResult summarises a completed run
type MergeResult struct {
	InputClusters  int
	OutputClusters int
	Domains        int
	MetadataBlocks int
	Signals        []domain.Signal
	Groups         []domain.MergeGroup
	Duration       time.Duration
}

// MergeService runs merge requests
type MergeService struct {
	loaderOpts loader.MetadataOptions
	importer   codec.Importer
	exporter   codec.Exporter
	stats      config.StatsConfig
	logger     *log.Logger
}

// NewMergeService creates a merge service from configuration
func NewMergeService(cfg *config.Config, logger *log.Logger) *MergeService {
	if logger == nil {
		logger = log.Default()
	}
	jsonCodec := codec.NewJSONCodec(cfg.Output.Indent)
	return &MergeService{
		loaderOpts: loader.MetadataOptions{MaxLineBytes: cfg.Loader.MaxLineBytes},
		importer:   jsonCodec,
		exporter:   jsonCodec,
		stats:      cfg.Stats,
		logger:     logger,
	}
}

type inputs struct {
	clusters   []domain.Cluster
	membership domain.Membership
	index      domain.MetadataIndex
}

// Run executes a merge request. No output is written unless every phase succeeds.
func (s *MergeService) Run(ctx context.Context, req MergeRequest) (*MergeResult, error) {
	if err := domain.ValidateThreshold(req.Threshold); err != nil {
		return nil, err
	}
	start := time.Now()

	s.logger.Info("Loading inputs", "clusters", req.ClustersPath, "ips", req.MembershipPath, "metadata", req.MetadataPath)
	in, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := in.membership.Validate(len(in.clusters)); err != nil {
		return nil, err
	}
	s.logger.Info("Data loaded, linking metadata",
		"clusters", len(in.clusters), "with_ips", len(in.membership.Indices()), "blocks", len(in.index))

	signals := merge.ComputeSignals(in.membership, in.index)
	s.report(signals)

	s.logger.Info("Merging", "clusters", len(in.clusters), "threshold", req.Threshold)
	merged, groups := merge.Merge(in.clusters, signals, req.Threshold)
	for _, g := range groups {
		s.logger.Debug("Merge group", "tag", g.Tag, "members", g.Members)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := codec.WriteFile(req.OutputPath, merged, s.exporter); err != nil {
		return nil, err
	}

	result := &MergeResult{
		InputClusters:  len(in.clusters),
		OutputClusters: len(merged),
		Domains:        domain.DomainCount(merged),
		MetadataBlocks: len(in.index),
		Signals:        signals,
		Groups:         groups,
		Duration:       time.Since(start),
	}
	s.logger.Info(fmt.Sprintf("Merged to %d clusters", result.OutputClusters),
		"groups", len(groups), "output", req.OutputPath, "duration", result.Duration.Round(time.Millisecond))
	return result, nil
}

// load reads the three inputs concurrently and waits for all of them
func (s *MergeService) load(ctx context.Context, req MergeRequest) (*inputs, error) {
	var in inputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		clusters, err := codec.ReadFile(req.ClustersPath, s.importer)
		if err != nil {
			return err
		}
		in.clusters = clusters
		return nil
	})

	g.Go(func() error {
		membership, err := loader.LoadMembership(req.MembershipPath)
		if err != nil {
			return err
		}
		in.membership = membership
		return nil
	})

	g.Go(func() error {
		index, err := loader.LoadMetadataFile(gctx, req.MetadataPath, s.loaderOpts)
		if err != nil {
			return err
		}
		in.index = index
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

// report logs the confidence histogram. It never fails the run.
func (s *MergeService) report(signals []domain.Signal) {
	if !s.stats.Enabled {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Confidence report failed", "error", r)
		}
	}()

	h := merge.ConfidenceHistogram(signals, s.stats.Base, s.stats.Steps)
	var buf bytes.Buffer
	if _, err := h.WriteTo(&buf); err != nil {
		s.logger.Warn("Confidence report failed", "error", err)
		return
	}
	s.logger.Info("Metadata confidences\n"+buf.String(), "clusters", h.Count())
}
