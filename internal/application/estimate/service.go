// Package estimate provides the application-level service for HSP estimation.
// This package serves as the interface between HTTP/CLI handlers and the
// domain engine: DTO translation, validation, logging, and metrics.
package estimate

import (
	"context"
	"time"

	"github.com/solventworks/hansen/internal/domain/hsp"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/prometheus"
	"github.com/solventworks/hansen/pkg/errors"
	"github.com/solventworks/hansen/pkg/types/common"
	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

// Service defines the interface for HSP estimation operations.
type Service interface {
	Estimate(ctx context.Context, input *EstimateInput) (*EstimateOutput, error)
	Distance(ctx context.Context, input *DistanceInput) (*DistanceOutput, error)
}

// EstimateInput contains input for one estimation request.
type EstimateInput struct {
	// Connectivity is the SMILES-style structure string; may be empty.
	Connectivity string
	// MolecularWeight in g/mol; must be positive.
	MolecularWeight float64
	// Name and EnglishName drive the reference-table lookup.
	Name        string
	EnglishName string
	// Method, when non-empty, bypasses the selection policy and requests one
	// specific method tag.
	Method string
	// Existing is the molecule's previous result, consulted only by the
	// manual-method switch.
	Existing *htypes.Result
}

// FragmentDTO is one (group, count) line of the breakdown.
type FragmentDTO struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// EstimateOutput is the result record handed back to interface layers.
type EstimateOutput struct {
	RequestID common.ID      `json:"request_id"`
	Result    *htypes.Result `json:"result"`
	Fragments []FragmentDTO  `json:"fragments,omitempty"`
}

// DistanceInput carries the two results to compare.
type DistanceInput struct {
	A *htypes.Result
	B *htypes.Result
}

// DistanceOutput carries the Hansen distance Ra.
type DistanceOutput struct {
	Distance float64 `json:"distance"`
}

// serviceImpl implements the Service interface.
type serviceImpl struct {
	estimator *hsp.Estimator
	logger    logging.Logger
	metrics   *prometheus.Metrics
}

// NewService creates a new estimation application service.  The metrics
// argument may be nil when no metrics endpoint is served (CLI usage).
func NewService(estimator *hsp.Estimator, logger logging.Logger, metrics *prometheus.Metrics) Service {
	s := &serviceImpl{
		estimator: estimator,
		logger:    logger,
		metrics:   metrics,
	}
	if metrics != nil {
		metrics.PatternCompileFailuresTotal.Add(float64(estimator.SkippedPatterns()))
	}
	return s
}

func (s *serviceImpl) Estimate(ctx context.Context, input *EstimateInput) (*EstimateOutput, error) {
	if input == nil {
		return nil, errors.InvalidParam("estimate input is required")
	}
	if input.MolecularWeight <= 0 {
		return nil, errors.InvalidParam("molecular weight must be positive")
	}

	mol := &htypes.Molecule{
		Connectivity:    input.Connectivity,
		MolecularWeight: input.MolecularWeight,
		Name:            input.Name,
		EnglishName:     input.EnglishName,
		HSP:             input.Existing,
	}

	started := time.Now()
	result, outcome, err := s.run(mol, input.Method)
	if err != nil {
		return nil, err
	}

	fragments := s.fragments(mol.Connectivity)
	s.observe(result, outcome, mol, time.Since(started))

	return &EstimateOutput{
		RequestID: common.NewID(),
		Result:    result,
		Fragments: fragments,
	}, nil
}

// run dispatches between the selection policy and an explicit method request
// and labels the outcome for metrics.
func (s *serviceImpl) run(mol *htypes.Molecule, methodStr string) (*htypes.Result, string, error) {
	if methodStr == "" {
		result := s.estimator.Estimate(mol)
		switch {
		case result.Method == htypes.MethodExperimental:
			return result, "reference", nil
		case result.Method == htypes.MethodManual:
			return result, "fallback", nil
		default:
			return result, "computed", nil
		}
	}

	method, err := htypes.ParseMethod(methodStr)
	if err != nil {
		return nil, "", errors.New(errors.CodeMethodUnknown, "unknown method").
			WithDetail("method=" + methodStr)
	}
	result := s.estimator.EstimateWith(mol, method)
	if result == nil {
		return nil, "", errors.New(errors.CodeMethodUnavailable, "method unavailable for this molecule").
			WithDetail("method=" + method.String())
	}
	return result, "computed", nil
}

func (s *serviceImpl) fragments(connectivity string) []FragmentDTO {
	started := time.Now()
	fragments := s.estimator.Fragments(connectivity)
	if s.metrics != nil {
		s.metrics.FragmentationDuration.Observe(time.Since(started).Seconds())
	}

	dtos := make([]FragmentDTO, 0, len(fragments))
	for _, f := range fragments {
		dtos = append(dtos, FragmentDTO{Group: f.Group.Name, Count: f.Count})
	}
	return dtos
}

func (s *serviceImpl) observe(result *htypes.Result, outcome string, mol *htypes.Molecule, elapsed time.Duration) {
	s.logger.Info("estimate completed",
		logging.String("name", mol.Name),
		logging.String("method", result.Method.String()),
		logging.String("outcome", outcome),
		logging.Float64("delta_d", result.DeltaD),
		logging.Float64("delta_p", result.DeltaP),
		logging.Float64("delta_h", result.DeltaH),
		logging.Duration("elapsed", elapsed))

	if s.metrics == nil {
		return
	}
	method := result.Method.String()
	s.metrics.EstimatesTotal.WithLabelValues(method, outcome).Inc()
	s.metrics.EstimateDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	if len(mol.PreferredNames()) > 0 {
		lookup := "miss"
		if outcome == "reference" {
			lookup = "hit"
		}
		s.metrics.ReferenceLookupsTotal.WithLabelValues(lookup).Inc()
	}
}

func (s *serviceImpl) Distance(ctx context.Context, input *DistanceInput) (*DistanceOutput, error) {
	if input == nil || input.A == nil || input.B == nil {
		return nil, errors.InvalidParam("two HSP results are required")
	}
	return &DistanceOutput{Distance: hsp.Distance(input.A, input.B)}, nil
}
