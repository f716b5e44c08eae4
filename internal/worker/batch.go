package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/notmytype/internal/model"
)

// Validator scores one heading/body pair
type Validator interface {
	Validate(heading, body string) model.ValidationResult
}

// Pair is one line of a batch file
type Pair struct {
	Heading string
	Body    string
	Line    int
}

// PairResult is the outcome of validating one Pair
type PairResult struct {
	Index      int
	Pair       Pair
	Validation model.ValidationResult
	Error      error
}

// BatchValidator validates many pairs on a worker pool
type BatchValidator struct {
	validator   Validator
	concurrency int
}

// NewBatchValidator creates a batch validator
func NewBatchValidator(validator Validator, concurrency int) *BatchValidator {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchValidator{
		validator:   validator,
		concurrency: concurrency,
	}
}

// ValidatePairs validates pairs concurrently and returns results in input order.
// Pairs that never ran because ctx was cancelled carry ctx.Err().
func (b *BatchValidator) ValidatePairs(ctx context.Context, pairs []Pair) []*PairResult {
	pool := NewPool(b.concurrency, b.validatePair).
		OnSkip(func(pair Pair, err error) *PairResult {
			return &PairResult{Pair: pair, Error: err}
		})

	results := pool.Run(ctx, pairs)
	for i, r := range results {
		r.Index = i
	}
	return results
}

func (b *BatchValidator) validatePair(ctx context.Context, pair Pair) *PairResult {
	if err := ctx.Err(); err != nil {
		return &PairResult{Pair: pair, Error: err}
	}
	return &PairResult{
		Pair:       pair,
		Validation: b.validator.Validate(pair.Heading, pair.Body),
	}
}

// ValidateFile reads a pairs file and validates it
func (b *BatchValidator) ValidateFile(ctx context.Context, filePath string) ([]*PairResult, error) {
	pairs, err := ReadPairsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read pairs: %w", err)
	}
	return b.ValidatePairs(ctx, pairs), nil
}

// ReadPairsFromFile reads "heading,body" pairs from a file
func ReadPairsFromFile(filePath string) ([]Pair, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ParsePairs(file)
}

// ParsePairs reads one "heading,body" pair per line.
// Blank lines and lines starting with # are skipped; repeated pairs are dropped.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	seen := make(map[Pair]bool)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		heading, body, ok := strings.Cut(line, ",")
		heading = strings.TrimSpace(heading)
		body = strings.TrimSpace(body)
		if !ok || heading == "" || body == "" {
			return nil, fmt.Errorf("line %d: expected \"heading,body\", got %q", lineNo, line)
		}

		key := Pair{Heading: heading, Body: body}
		if seen[key] {
			continue
		}
		seen[key] = true

		pairs = append(pairs, Pair{Heading: heading, Body: body, Line: lineNo})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return pairs, nil
}
