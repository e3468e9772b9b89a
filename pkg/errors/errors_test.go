package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New(CodeParseFailed, "bad SMILES")
	assert.Equal(t, "[CHEM_001] bad SMILES", err.Error())

	err = err.WithDetail("smiles=C1CC")
	assert.Equal(t, "[CHEM_001] bad SMILES: smiles=C1CC", err.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))

	cause := stderrors.New("boom")
	err := Wrap(cause, CodePatternInvalid, "compile failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodePatternInvalid, err.Code)

	// CodeUnknown preserves the inner AppError's code.
	inner := New(CodeMethodUnavailable, "no fragments")
	outer := Wrap(fmt.Errorf("ctx: %w", inner), CodeUnknown, "estimate failed")
	assert.Equal(t, CodeMethodUnavailable, outer.Code)
}

func TestIsCodeAndGetCode(t *testing.T) {
	err := Wrap(New(CodeNotFound, "no entry"), CodeInternal, "lookup")
	assert.True(t, IsCode(err, CodeInternal))
	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(err, CodeParseFailed))

	assert.Equal(t, CodeInternal, GetCode(err))
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
}

func TestWithDetailNilReceiver(t *testing.T) {
	var ae *AppError
	assert.Nil(t, ae.WithDetail("anything"))
}

func TestHTTPStatusForCode(t *testing.T) {
	assert.Equal(t, 400, HTTPStatusForCode(CodeParseFailed))
	assert.Equal(t, 500, HTTPStatusForCode(ErrorCode("NOPE")))
}
