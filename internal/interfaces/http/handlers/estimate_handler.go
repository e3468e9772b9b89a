package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solventworks/hansen/internal/application/estimate"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	"github.com/solventworks/hansen/pkg/errors"
	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

// miscibilityThreshold is the conventional Ra below which two substances are
// flagged likely miscible.  A display-layer convention, not an engine rule.
const miscibilityThreshold = 8.0

// EstimateHandler serves the estimation and distance endpoints.
type EstimateHandler struct {
	service estimate.Service
	logger  logging.Logger
}

// NewEstimateHandler creates a new estimate handler.
func NewEstimateHandler(service estimate.Service, logger logging.Logger) *EstimateHandler {
	return &EstimateHandler{service: service, logger: logger}
}

type estimateRequest struct {
	Connectivity    string  `json:"connectivity"`
	MolecularWeight float64 `json:"molecular_weight"`
	Name            string  `json:"name"`
	EnglishName     string  `json:"english_name"`
	Method          string  `json:"method"`
}

// Create handles POST /api/v1/estimates.
func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("malformed request body").WithCause(err))
		return
	}

	out, err := h.service.Estimate(c.Request.Context(), &estimate.EstimateInput{
		Connectivity:    req.Connectivity,
		MolecularWeight: req.MolecularWeight,
		Name:            req.Name,
		EnglishName:     req.EnglishName,
		Method:          req.Method,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type tripleDTO struct {
	DeltaD float64 `json:"delta_d"`
	DeltaP float64 `json:"delta_p"`
	DeltaH float64 `json:"delta_h"`
}

type distanceRequest struct {
	A tripleDTO `json:"a"`
	B tripleDTO `json:"b"`
}

type distanceResponse struct {
	Distance       float64 `json:"distance"`
	LikelyMiscible bool    `json:"likely_miscible"`
}

// Distance handles POST /api/v1/distance.
func (h *EstimateHandler) Distance(c *gin.Context) {
	var req distanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("malformed request body").WithCause(err))
		return
	}

	out, err := h.service.Distance(c.Request.Context(), &estimate.DistanceInput{
		A: htypes.NewResult(req.A.DeltaD, req.A.DeltaP, req.A.DeltaH, 0, htypes.MethodManual),
		B: htypes.NewResult(req.B.DeltaD, req.B.DeltaP, req.B.DeltaH, 0, htypes.MethodManual),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distanceResponse{
		Distance:       out.Distance,
		LikelyMiscible: out.Distance < miscibilityThreshold,
	})
}
