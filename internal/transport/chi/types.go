package chi

import "github.com/kailas-cloud/seedicon/internal/domain/figure"

// ErrorCode identifies an API error class.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest      ErrorCode = "bad_request"
	CodeInvalidDigest   ErrorCode = "invalid_digest"
	CodeUnknownStrategy ErrorCode = "unknown_strategy"
	CodeInvalidCount    ErrorCode = "invalid_count"
	CodeInternalError   ErrorCode = "internal_error"
)

// ErrorResponse is the error envelope returned for all failures.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// IdenticonResponse holds one derived identicon.
type IdenticonResponse struct {
	Seed       string                `json:"seed"`
	Strategy   string                `json:"strategy"`
	Primitives []figure.ParameterSet `json:"primitives"`
}

// DigestResponse returns the digest for one (seed, index) pair.
type DigestResponse struct {
	Seed   string `json:"seed"`
	Index  int    `json:"index"`
	Digest string `json:"digest"`
}

// MeshResponse holds the sculpted face mesh.
type MeshResponse struct {
	Seed     string       `json:"seed"`
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][3]int     `json:"faces"`
}

// HealthResponse reports aggregated component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
