// Package verifier checks that two support maps computed by different counting
// strategies are equivalent.
package verifier

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dbsmedya/gobasket/internal/logger"
	"github.com/dbsmedya/gobasket/internal/types"
)

// VerificationMethod defines how two support maps are compared.
type VerificationMethod string

const (
	// MethodCount compares key sets and every support value within a tolerance
	MethodCount VerificationMethod = "count"
	// MethodSHA256 compares digests of the rounded maps
	MethodSHA256 VerificationMethod = "sha256"
)

// ErrMismatch is returned when the compared maps differ.
var ErrMismatch = errors.New("support maps differ")

// defaultPrecision is the number of decimals used when hashing support values.
const defaultPrecision = 9

// VerifyResult holds the outcome of one comparison.
type VerifyResult struct {
	Method        VerificationMethod
	ExpectedCount int
	ActualCount   int
	ExpectedHash  string
	ActualHash    string
	Match         bool
	ErrorMessage  string
}

// Verifier compares support maps.
type Verifier struct {
	method    VerificationMethod
	tolerance float64
	precision int
	logger    *logger.Logger
}

// NewVerifier creates a verifier. An empty method defaults to MethodCount.
func NewVerifier(method VerificationMethod, tolerance float64, log *logger.Logger) (*Verifier, error) {
	if method == "" {
		method = MethodCount
	}
	if method != MethodCount && method != MethodSHA256 {
		return nil, fmt.Errorf("unsupported verification method: %s", method)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("tolerance must be >= 0, got %g", tolerance)
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Verifier{
		method:    method,
		tolerance: tolerance,
		precision: defaultPrecision,
		logger:    log,
	}, nil
}

// Verify compares actual against expected. A mismatch returns the populated result and an
// error wrapping ErrMismatch.
func (v *Verifier) Verify(expected, actual types.SupportMap) (*VerifyResult, error) {
	var result *VerifyResult
	switch v.method {
	case MethodCount:
		result = v.verifyByValue(expected, actual)
	case MethodSHA256:
		result = v.verifyBySHA256(expected, actual)
	default:
		return nil, fmt.Errorf("unsupported verification method: %s", v.method)
	}

	if !result.Match {
		v.logger.Errorf("Verification FAILED (method=%s): %s", v.method, result.ErrorMessage)
		return result, fmt.Errorf("%w: %s", ErrMismatch, result.ErrorMessage)
	}

	v.logger.Debugf("Verification PASSED (method=%s, %d candidates)", v.method, result.ExpectedCount)
	return result, nil
}

func (v *Verifier) verifyByValue(expected, actual types.SupportMap) *VerifyResult {
	result := &VerifyResult{
		Method:        MethodCount,
		ExpectedCount: len(expected),
		ActualCount:   len(actual),
		Match:         true,
	}

	for _, c := range expected.Sorted() {
		got, ok := actual[c]
		if !ok {
			result.Match = false
			result.ErrorMessage = fmt.Sprintf("candidate %s missing from actual", c)
			return result
		}
		if math.Abs(got-expected[c]) > v.tolerance {
			result.Match = false
			result.ErrorMessage = fmt.Sprintf("candidate %s: expected %g, got %g", c, expected[c], got)
			return result
		}
	}

	if len(actual) != len(expected) {
		for _, c := range actual.Sorted() {
			if _, ok := expected[c]; !ok {
				result.Match = false
				result.ErrorMessage = fmt.Sprintf("unexpected candidate %s in actual", c)
				return result
			}
		}
	}

	return result
}

func (v *Verifier) verifyBySHA256(expected, actual types.SupportMap) *VerifyResult {
	result := &VerifyResult{
		Method:        MethodSHA256,
		ExpectedCount: len(expected),
		ActualCount:   len(actual),
		ExpectedHash:  v.Digest(expected),
		ActualHash:    v.Digest(actual),
	}
	result.Match = result.ExpectedCount == result.ActualCount && result.ExpectedHash == result.ActualHash

	if !result.Match {
		if result.ExpectedCount != result.ActualCount {
			result.ErrorMessage = fmt.Sprintf("count mismatch: expected=%d, actual=%d",
				result.ExpectedCount, result.ActualCount)
		} else {
			result.ErrorMessage = fmt.Sprintf("hash mismatch: expected=%s, actual=%s",
				result.ExpectedHash[:16], result.ActualHash[:16])
		}
	}
	return result
}

// Digest returns the hex SHA256 of the map's candidates in ascending order, one
// `(A, B)=support` line each, with support rounded to a fixed precision.
func (v *Verifier) Digest(m types.SupportMap) string {
	hasher := sha256.New()
	for _, c := range m.Sorted() {
		hasher.Write([]byte(c.String()))
		hasher.Write([]byte("="))
		hasher.Write([]byte(strconv.FormatFloat(m[c], 'f', v.precision, 64)))
		hasher.Write([]byte("\n"))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// GetMethod returns the configured verification method.
func (v *Verifier) GetMethod() VerificationMethod {
	return v.method
}
