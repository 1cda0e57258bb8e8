// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/coactive/coactivation"
	"github.com/katalvlaran/coactive/config"
	"github.com/katalvlaran/coactive/control"
	"github.com/katalvlaran/coactive/core"
	"github.com/katalvlaran/coactive/dfs"
	"github.com/katalvlaran/coactive/errkind"
	"github.com/katalvlaran/coactive/influence"
	"github.com/katalvlaran/coactive/keycode"
	"github.com/katalvlaran/coactive/matrix"
	"github.com/katalvlaran/coactive/metrics"
	"github.com/katalvlaran/coactive/significance"
	"github.com/katalvlaran/coactive/threshold"
)

var (
	// ErrConfigNil indicates NewRunner was given no configuration.
	ErrConfigNil = errors.New("pipeline: config is nil")

	// ErrNoInputPath indicates Load was called without an input path.
	ErrNoInputPath = errors.New("pipeline: input path is empty")
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for stage boundaries (nil keeps slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRunID replaces the run ID generator (uuid.NewString by default).
func WithRunID(fn func() string) Option {
	return func(r *Runner) {
		if fn != nil {
			r.newRunID = fn
		}
	}
}

// Runner executes the analysis stages for one configuration.
type Runner struct {
	cfg      *config.Config
	log      *slog.Logger
	newRunID func() string
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner(cfg *config.Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	r := &Runner{cfg: cfg, log: slog.Default(), newRunID: uuid.NewString}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run loads the configured input and analyzes it.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	regions, err := r.Load()
	if err != nil {
		return nil, err
	}

	return r.Analyze(ctx, regions)
}

// Load reads the configured input. The returned Names are display labels
// (trimmed) and the Sets are already restricted to the configured domain.
func (r *Runner) Load() (*keycode.Regions, error) {
	in := r.cfg.Input
	if in.Path == "" {
		return nil, ErrNoInputPath
	}

	var (
		regions *keycode.Regions
		err     error
	)
	switch in.Format {
	case config.FormatWorkspace:
		regions, err = keycode.ReadWorkspaceDir(in.Path)
	default:
		regions, err = readExcelFile(in.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: load %s: %w", in.Path, err)
	}

	sets := regions.Sets
	if in.Domain != "" {
		sets = keycode.DomainFilter(sets, in.Domains[in.Domain])
	}
	out := &keycode.Regions{
		Names: keycode.RegionLabels(regions.Names, in.LabelTrim),
		Sets:  sets,
	}
	r.log.Info("input loaded",
		slog.String("path", in.Path),
		slog.String("format", in.Format),
		slog.Int("regions", len(out.Sets)),
		slog.String("domain", in.Domain),
	)

	return out, nil
}

func readExcelFile(path string) (*keycode.Regions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return keycode.ReadExcelCSV(f)
}

// Analyze runs every stage on regions and returns the assembled report.
func (r *Runner) Analyze(ctx context.Context, regions *keycode.Regions) (*Report, error) {
	if regions == nil || len(regions.Sets) == 0 {
		return nil, fmt.Errorf("pipeline: %w", keycode.ErrNoRegions)
	}
	a := r.cfg.Analysis
	sets, labels := regions.Sets, regions.Names
	n := len(sets)

	rep := &Report{
		RunID:        r.newRunID(),
		Regions:      labels,
		Labels:       make(map[string]string, n),
		Universe:     keycode.NumberOfContrasts(sets),
		Decision:     a.Decision,
		Alpha:        a.Alpha,
		Cost:         a.Cost,
		ZTransformed: a.ZTransform,
	}
	for i := 0; i < n; i++ {
		id := matrix.VertexID(i, n)
		rep.Labels[id] = id
		if i < len(labels) {
			rep.Labels[id] = labels[i]
		}
	}
	rep.Total = a.Total
	if rep.Total == 0 {
		rep.Total = rep.Universe
	}
	log := r.log.With(slog.String("run_id", rep.RunID))

	// Stage 1: counts and similarities.
	C, err := coactivation.BuildCoactivation(sets,
		coactivation.WithParallelism(a.Parallelism), coactivation.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("pipeline: co-activation: %w", err)
	}
	J, err := coactivation.BuildJaccard(sets,
		coactivation.WithParallelism(a.Parallelism), coactivation.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("pipeline: jaccard: %w", err)
	}
	log.Info("matrices built", slog.Int("regions", n), slog.Int("universe", rep.Universe))

	// Stage 2: significance mask.
	decision, err := significance.ParseDecision(a.Decision)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	S, err := significance.Filter(C, rep.Total, a.Alpha,
		significance.WithDecision(decision),
		significance.WithParallelism(a.Parallelism),
		significance.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: significance: %w", err)
	}
	W, err := r.mask(rep, C, S, J)
	if err != nil {
		return nil, err
	}
	log.Info("significance applied",
		slog.String("decision", decision.String()),
		slog.Int("coactive_pairs", rep.CoactivePairs),
		slog.Int("retained_pairs", rep.RetainedPairs),
	)

	// Stage 3: graph and thresholds.
	g, err := r.buildGraph(W, labels)
	if err != nil {
		return nil, err
	}
	rep.Vertices = g.Vertices()
	for _, e := range g.Edges() {
		rep.Edges = append(rep.Edges, Link{From: e.From, To: e.To, Weight: e.Weight})
	}
	if rep.Components, err = dfs.Components(g, dfs.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("pipeline: components: %w", err)
	}
	log.Info("graph thresholded",
		slog.Int("vertices", len(rep.Vertices)),
		slog.Int("edges", len(rep.Edges)),
		slog.Int("components", len(rep.Components)),
	)

	// Stage 4: influence and metrics.
	if a.Influence {
		links, err := influenceLinks(C, labels, a.TopN)
		switch {
		case errors.Is(err, errkind.ErrDegenerateStatistics):
			rep.Notes = append(rep.Notes, "influence skipped: "+err.Error())
		case err != nil:
			return nil, fmt.Errorf("pipeline: influence: %w", err)
		default:
			rep.Influence = links
		}
	}
	if rep.Basic, err = r.runMetrics(rep, "basic", g, metrics.RunBasic); err != nil {
		return nil, err
	}
	if rep.Weighted, err = r.runMetrics(rep, "weighted", g, metrics.RunWeighted); err != nil {
		return nil, err
	}

	// Stage 5: control network.
	if r.cfg.Control.Enabled {
		if rep.Control, err = r.Control(ctx, regions); err != nil {
			return nil, err
		}
	}
	log.Info("analysis finished", slog.Int("notes", len(rep.Notes)))

	return rep, nil
}

// mask zeroes the Jaccard cells whose counts did not survive significance,
// applies the optional z-transform and clamps negative scores to zero.
func (r *Runner) mask(rep *Report, C, S, J *matrix.Dense) (*matrix.Dense, error) {
	c, s, w := C.ToRows(), S.ToRows(), J.ToRows()
	for i := range w {
		for j := i + 1; j < len(w); j++ {
			if c[i][j] > 0 {
				rep.CoactivePairs++
			}
			if s[i][j] > 0 {
				rep.RetainedPairs++
				continue
			}
			w[i][j], w[j][i] = 0, 0
		}
	}
	W, err := matrix.FromRows(w)
	if err != nil {
		return nil, fmt.Errorf("pipeline: mask: %w", err)
	}
	if !r.cfg.Analysis.ZTransform {
		return W, nil
	}

	Z, err := matrix.ZTransform(W)
	if err != nil {
		return nil, fmt.Errorf("pipeline: z-transform: %w", err)
	}
	z := Z.ToRows()
	for i := range z {
		for j := range z[i] {
			if z[i][j] < 0 {
				z[i][j] = 0
			}
		}
	}

	return matrix.FromRows(z)
}

func (r *Runner) buildGraph(W *matrix.Dense, labels []string) (*core.Graph, error) {
	a := r.cfg.Analysis
	g, err := matrix.ToGraph(W, labels, false)
	if err != nil {
		return nil, fmt.Errorf("pipeline: graph: %w", err)
	}
	var opts []threshold.Option
	if a.LegacyOffset {
		opts = append(opts, threshold.WithLegacyOffset())
	}
	if g, err = threshold.ApplyCost(g, a.Cost, opts...); err != nil {
		return nil, fmt.Errorf("pipeline: cost: %w", err)
	}
	if a.MinWeight > 0 {
		if g, err = threshold.RemoveBelow(g, a.MinWeight); err != nil {
			return nil, fmt.Errorf("pipeline: min weight: %w", err)
		}
	}
	if g, err = threshold.RemoveEdgeless(g); err != nil {
		return nil, fmt.Errorf("pipeline: prune: %w", err)
	}

	return g, nil
}

// runMetrics records a disconnected graph as a note instead of failing.
func (r *Runner) runMetrics(rep *Report, name string, g *core.Graph,
	fn func(*core.Graph, int) (*metrics.Report, error)) (*metrics.Report, error) {
	m, err := fn(g, r.cfg.Analysis.TopN)
	if errors.Is(err, errkind.ErrDisconnectedGraph) {
		rep.Notes = append(rep.Notes, name+" metrics skipped: "+err.Error())

		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s metrics: %w", name, err)
	}

	return m, nil
}

// influenceLinks returns the topN strongest influence edges, strongest
// first, ties by (From, To).
func influenceLinks(C *matrix.Dense, labels []string, topN int) ([]Link, error) {
	dg, err := influence.BuildDigraph(C, labels)
	if err != nil {
		return nil, err
	}
	edges := dg.Edges()
	links := make([]Link, len(edges))
	for i, e := range edges {
		links[i] = Link{From: e.From, To: e.To, Weight: e.Weight}
	}
	sort.SliceStable(links, func(i, j int) bool {
		if links[i].Weight != links[j].Weight {
			return links[i].Weight > links[j].Weight
		}
		if links[i].From != links[j].From {
			return links[i].From < links[j].From
		}

		return links[i].To < links[j].To
	})
	if topN < len(links) {
		links = links[:topN]
	}

	return links, nil
}

// Control averages the Jaccard matrices of resampled keycode subsets and
// summarizes the resulting network.
func (r *Runner) Control(ctx context.Context, regions *keycode.Regions) (*ControlSummary, error) {
	if regions == nil || len(regions.Sets) == 0 {
		return nil, fmt.Errorf("pipeline: %w", keycode.ErrNoRegions)
	}
	c := r.cfg.Control
	g, err := control.AverageGraph(ctx, regions.Sets, regions.Names, c.Studies, c.Iterations,
		control.WithSeed(c.Seed), control.WithParallelism(r.cfg.Analysis.Parallelism))
	if err != nil {
		return nil, fmt.Errorf("pipeline: control: %w", err)
	}
	edges := g.Edges()
	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = e.Weight
	}
	sum := &ControlSummary{
		Studies:    c.Studies,
		Iterations: c.Iterations,
		Seed:       c.Seed,
		Edges:      len(edges),
	}
	if len(weights) > 0 {
		sum.MeanWeight = stat.Mean(weights, nil)
	}
	r.log.Info("control network built",
		slog.Int("studies", c.Studies),
		slog.Int("iterations", c.Iterations),
		slog.Int("edges", sum.Edges),
	)

	return sum, nil
}
