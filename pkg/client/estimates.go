package client

import (
	"context"

	"github.com/solventworks/hansen/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// DTOs — request / response
// ─────────────────────────────────────────────────────────────────────────────

// EstimateRequest describes one estimation call.  Leaving Method empty lets
// the server pick the method by its selection policy.
type EstimateRequest struct {
	Connectivity    string  `json:"connectivity,omitempty"`
	MolecularWeight float64 `json:"molecular_weight"`
	Name            string  `json:"name,omitempty"`
	EnglishName     string  `json:"english_name,omitempty"`
	Method          string  `json:"method,omitempty"`
}

// HSPResult is one complete Hansen solubility parameter estimate.  Delta
// components are in MPa^0.5, the molar volume in cm³/mol.
type HSPResult struct {
	DeltaD      float64 `json:"delta_d"`
	DeltaP      float64 `json:"delta_p"`
	DeltaH      float64 `json:"delta_h"`
	DeltaT      float64 `json:"delta_t"`
	DeltaV      float64 `json:"delta_v"`
	MolarVolume float64 `json:"molar_volume"`
	Method      string  `json:"method"`
}

// Fragment is one (group, count) line of the structure breakdown.
type Fragment struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// EstimateResult is the response envelope for Estimate.
type EstimateResult struct {
	RequestID string     `json:"request_id"`
	Result    *HSPResult `json:"result"`
	Fragments []Fragment `json:"fragments,omitempty"`
}

// Triple is a bare (deltaD, deltaP, deltaH) point for distance queries.
type Triple struct {
	DeltaD float64 `json:"delta_d"`
	DeltaP float64 `json:"delta_p"`
	DeltaH float64 `json:"delta_h"`
}

type distanceRequest struct {
	A Triple `json:"a"`
	B Triple `json:"b"`
}

// DistanceResult is the response envelope for Distance.
type DistanceResult struct {
	Distance       float64 `json:"distance"`
	LikelyMiscible bool    `json:"likely_miscible"`
}

// HealthStatus is the response of the liveness and readiness probes.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Operations
// ─────────────────────────────────────────────────────────────────────────────

// Estimate computes the Hansen solubility parameters for one molecule.
func (c *Client) Estimate(ctx context.Context, req *EstimateRequest) (*EstimateResult, error) {
	if req == nil {
		return nil, errors.InvalidParam("estimate request is required")
	}

	var out EstimateResult
	if err := c.post(ctx, "/api/v1/estimates", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Distance computes the Hansen distance Ra between two parameter triples.
func (c *Client) Distance(ctx context.Context, a, b Triple) (*DistanceResult, error) {
	var out DistanceResult
	if err := c.post(ctx, "/api/v1/distance", distanceRequest{A: a, B: b}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks the server liveness probe.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.get(ctx, "/healthz", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
