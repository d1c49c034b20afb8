package match

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hydrojetpros/bidscout/internal/ai"
	"github.com/hydrojetpros/bidscout/internal/profile"
	"github.com/hydrojetpros/bidscout/internal/rfp"
	"github.com/hydrojetpros/bidscout/internal/util"
)

const remoteExtractionTimeout = 30 * time.Second

// Analyzer runs the full pipeline: extract, score, decide. A remote
// extractor is optional sugar; the deterministic extractor is always the
// safety net and the analyzer never surfaces a remote failure to the caller.
type Analyzer struct {
	scheme  TierScheme
	remote  ai.Extractor
	logger  *zap.Logger
	timeout time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRemoteExtractor delegates extraction to the given service, falling
// back to the deterministic extractor on any failure.
func WithRemoteExtractor(extractor ai.Extractor) Option {
	return func(a *Analyzer) { a.remote = extractor }
}

// WithTierScheme selects the decision threshold table. Default is ThreeTier.
func WithTierScheme(scheme TierScheme) Option {
	return func(a *Analyzer) { a.scheme = scheme }
}

// WithRemoteTimeout bounds the remote extraction call.
func WithRemoteTimeout(timeout time.Duration) Option {
	return func(a *Analyzer) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// NewAnalyzer creates an analyzer. The logger is required; use zap.NewNop in
// tests.
func NewAnalyzer(logger *zap.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		scheme:  ThreeTier,
		logger:  logger,
		timeout: remoteExtractionTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze evaluates one RFP against one profile. Validation failures (empty
// RFP text, unidentified profile) are the only errors; everything downstream
// degrades to conservative scores instead of failing.
func (a *Analyzer) Analyze(ctx context.Context, rfpText string, p *profile.CompanyProfile) (*Result, error) {
	if strings.TrimSpace(rfpText) == "" {
		return nil, fmt.Errorf("rfp text is required")
	}
	if err := p.CheckForAnalysis(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := a.logger.With(zap.String("analysis_id", id))

	requirements := a.extract(ctx, logger, rfpText)

	logger.Debug("extracted requirements",
		zap.Int("services", len(requirements.Services)),
		zap.Int("certifications", len(requirements.Certifications)),
		zap.String("location_zip", requirements.Location.Zip),
		zap.String("location_city", requirements.Location.City),
	)

	result := Evaluate(requirements, p, a.scheme)
	result.ID = id

	logger.Info("analysis scored",
		zap.String("decision", string(result.Decision)),
		zap.Int("score", result.Score),
		zap.Float64("geographic", result.Breakdown.Geographic),
		zap.Float64("insurance", result.Breakdown.Insurance),
		zap.Float64("services", result.Breakdown.Services),
		zap.Float64("certifications", result.Breakdown.Certifications),
		zap.Int("missing", len(result.MissingRequirements)),
		zap.Int("fillable", len(result.FillableGaps)),
	)

	return result, nil
}

// extract runs the remote extractor when configured, with one retry, and
// falls back to the deterministic extractor on any failure. The fallback is
// mandatory: the caller must always get a requirement set.
func (a *Analyzer) extract(ctx context.Context, logger *zap.Logger, rfpText string) rfp.Requirements {
	if a.remote == nil {
		return rfp.Extract(rfpText)
	}

	remoteCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		requirements, err := a.remote.ExtractRequirements(remoteCtx, rfpText)
		if err == nil && requirements != nil {
			logger.Debug("remote extraction succeeded", zap.Int("attempt", attempt+1))
			return *requirements
		}
		lastErr = err
		if remoteCtx.Err() != nil {
			break
		}
		if err := util.WaitFor(remoteCtx, time.Second); err != nil {
			break
		}
	}

	logger.Warn("remote extraction failed, falling back to deterministic extractor",
		zap.Error(lastErr),
	)
	return rfp.Extract(rfpText)
}
