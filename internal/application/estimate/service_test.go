package estimate

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventworks/hansen/internal/domain/chem"
	"github.com/solventworks/hansen/internal/domain/hsp"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
	"github.com/solventworks/hansen/internal/infrastructure/monitoring/prometheus"
	"github.com/solventworks/hansen/pkg/errors"
	htypes "github.com/solventworks/hansen/pkg/types/hsp"
)

func newTestService(t *testing.T) (Service, *prometheus.Metrics) {
	t.Helper()
	estimator := hsp.NewEstimator(chem.NewEngine(), logging.NewNopLogger())
	t.Cleanup(estimator.Close)
	metrics := prometheus.NewMetrics("hansen_test")
	return NewService(estimator, logging.NewNopLogger(), metrics), metrics
}

func TestService_EstimatePolicy(t *testing.T) {
	svc, metrics := newTestService(t)

	out, err := svc.Estimate(context.Background(), &EstimateInput{
		Connectivity:    "CCO",
		MolecularWeight: 46.07,
		Name:            "ethanol",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Result)

	assert.False(t, out.RequestID.IsZero())
	assert.Equal(t, htypes.MethodExperimental, out.Result.Method)
	assert.NotEmpty(t, out.Fragments, "breakdown still reported alongside the reference hit")

	hits := metrics.ReferenceLookupsTotal.WithLabelValues("hit")
	assert.Equal(t, 1.0, testutil.ToFloat64(hits))
}

func TestService_EstimateExplicitMethod(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Estimate(context.Background(), &EstimateInput{
		Connectivity:    "CCO",
		MolecularWeight: 46.07,
		Method:          "van_krevelen",
	})
	require.NoError(t, err)
	assert.Equal(t, htypes.MethodVanKrevelen, out.Result.Method)
	assert.Greater(t, out.Result.DeltaD, 0.0)
}

func TestService_EstimateUnknownMethod(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Estimate(context.Background(), &EstimateInput{
		Connectivity:    "CCO",
		MolecularWeight: 46.07,
		Method:          "divination",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMethodUnknown))
}

func TestService_EstimateMethodUnavailable(t *testing.T) {
	svc, _ := newTestService(t)

	// No structure: the group-contribution method cannot run.
	_, err := svc.Estimate(context.Background(), &EstimateInput{
		MolecularWeight: 123.4,
		Method:          "van_krevelen",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMethodUnavailable))
}

func TestService_EstimateFallbackPlaceholder(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Estimate(context.Background(), &EstimateInput{
		MolecularWeight: 123.4,
		Name:            "unobtainium",
	})
	require.NoError(t, err)
	assert.Equal(t, htypes.MethodManual, out.Result.Method)
	assert.Zero(t, out.Result.DeltaD)
	assert.Empty(t, out.Fragments)
}

func TestService_EstimateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Estimate(context.Background(), nil)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))

	_, err = svc.Estimate(context.Background(), &EstimateInput{Connectivity: "CCO"})
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam), "weight is required")
}

func TestService_Distance(t *testing.T) {
	svc, _ := newTestService(t)

	a := htypes.NewResult(15.0, 8.0, 19.0, 0, htypes.MethodManual)
	b := htypes.NewResult(16.0, 8.0, 19.0, 0, htypes.MethodManual)

	out, err := svc.Distance(context.Background(), &DistanceInput{A: a, B: b})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out.Distance, 1e-12)

	_, err = svc.Distance(context.Background(), &DistanceInput{A: a})
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
	_, err = svc.Distance(context.Background(), nil)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}
