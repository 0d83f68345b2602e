package cluster

import (
	"fmt"
	"image"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract clusters the colours of a decoded image.
	Extract(img image.Image) (*Result, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmGreedy merges colours into the first cluster within the
	// threshold, in scan order.
	AlgorithmGreedy Algorithm = "greedy"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmGreedy,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified configuration.
// Returns an error if the configuration is invalid.
func NewExtractor(cfg ExtractorConfig) (Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Algorithm {
	case AlgorithmGreedy:
		return &GreedyExtractor{opts: Options{Threshold: cfg.Threshold, AlphaCutoff: cfg.AlphaCutoff}}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", cfg.Algorithm, ValidAlgorithms())
	}
}

// GreedyExtractor implements Extractor using Run.
type GreedyExtractor struct {
	opts Options
}

// NewGreedyExtractor creates a GreedyExtractor with the given options.
func NewGreedyExtractor(opts Options) *GreedyExtractor {
	return &GreedyExtractor{opts: opts}
}

// Extract clusters the colours of img. Each call uses its own accumulators.
func (e *GreedyExtractor) Extract(img image.Image) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	res := Run(FromImage(img), e.opts)
	return &res, nil
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm   Algorithm
	Threshold   float64
	AlphaCutoff uint8
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:   AlgorithmGreedy,
		Threshold:   DefaultThreshold,
		AlphaCutoff: DefaultAlphaCutoff,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %g", c.Threshold)
	}
	return nil
}
