package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkorolev/leadflow/internal/model"
)

// Submitter runs one lead through the submission flow.
type Submitter interface {
	Submit(ctx context.Context, sub model.Submission) (*model.Report, error)
}

// SubmitTask is one lead submission executed by the pool.
type SubmitTask struct {
	Lead      model.Submission
	Submitter Submitter
}

// Execute runs the submission.
func (t *SubmitTask) Execute(ctx context.Context) Result {
	report, err := t.Submitter.Submit(ctx, t.Lead)
	return &SubmitResult{Lead: t.Lead, Report: report, Error: err}
}

// SubmitResult is the outcome of one lead submission.
type SubmitResult struct {
	Lead   model.Submission
	Report *model.Report
	Error  error
}

// Err returns the submission error, if any.
func (r *SubmitResult) Err() error { return r.Error }

// BatchProcessor submits many leads concurrently.
type BatchProcessor struct {
	submitter   Submitter
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(submitter Submitter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		submitter:   submitter,
		concurrency: concurrency,
	}
}

// ProcessLeads submits the leads on the pool and returns all results.
func (b *BatchProcessor) ProcessLeads(ctx context.Context, leads []model.Submission) []*SubmitResult {
	if len(leads) == 0 {
		return []*SubmitResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, lead := range leads {
		pool.Submit(&SubmitTask{Lead: lead, Submitter: b.submitter})
	}

	results := pool.Wait()

	submitResults := make([]*SubmitResult, len(results))
	for i, result := range results {
		submitResults[i] = result.(*SubmitResult)
	}
	return submitResults
}

// ProcessFile reads leads from a file and submits them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*SubmitResult, error) {
	leads, err := ReadLeadsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read leads: %w", err)
	}
	return b.ProcessLeads(ctx, leads), nil
}

// ReadLeadsFromFile parses a leads file: one
// "name,email,phone[,website]" per line, blank lines and # comments
// skipped, duplicate identities dropped.
func ReadLeadsFromFile(path string) ([]model.Submission, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var leads []model.Submission
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			return nil, fmt.Errorf("line %d: expected name,email,phone[,website]", lineNo)
		}

		lead := model.Submission{
			Name:  strings.TrimSpace(parts[0]),
			Email: strings.TrimSpace(parts[1]),
			Phone: strings.TrimSpace(parts[2]),
		}
		if len(parts) >= 4 {
			lead.Website = strings.TrimSpace(parts[3])
		}

		if seen[lead.Identity()] {
			continue
		}
		seen[lead.Identity()] = true
		leads = append(leads, lead)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return leads, nil
}
