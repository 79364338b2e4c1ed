package behaviors

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ngnintedem3004/MediatR/contracts"
	"github.com/Ngnintedem3004/MediatR/dispatch"
)

// BehaviorFunc is a named function adapter for dispatch.Behavior.
type BehaviorFunc struct {
	name string
	fn   func(ctx context.Context, request any, next dispatch.Handler) (any, error)
}

// New creates a function-based behavior.
func New(name string, fn func(ctx context.Context, request any, next dispatch.Handler) (any, error)) *BehaviorFunc {
	return &BehaviorFunc{name: name, fn: fn}
}

// Handle implements dispatch.Behavior.
func (b *BehaviorFunc) Handle(ctx context.Context, request any, next dispatch.Handler) (any, error) {
	return b.fn(ctx, request, next)
}

// Name implements dispatch.Behavior.
func (b *BehaviorFunc) Name() string {
	return b.name
}

// Logging logs every request dispatch and its outcome.
type Logging struct {
	logger *slog.Logger
}

// NewLogging creates a logging behavior. A nil logger falls back to
// slog.Default().
func NewLogging(logger *slog.Logger) *Logging {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{logger: logger}
}

// Handle implements dispatch.Behavior.
func (b *Logging) Handle(ctx context.Context, request any, next dispatch.Handler) (any, error) {
	start := time.Now()

	attrs := []any{"requestType", fmt.Sprintf("%T", request)}
	if msg, ok := request.(contracts.Message); ok {
		attrs = append(attrs, "messageId", msg.GetID())
	}
	b.logger.Info("handling request", attrs...)

	resp, err := next.Handle(ctx, request)
	duration := time.Since(start)

	if err != nil {
		b.logger.Error("request failed", append(attrs, "duration", duration, "error", err)...)
	} else {
		b.logger.Info("request handled", append(attrs, "duration", duration)...)
	}

	return resp, err
}

// Name implements dispatch.Behavior.
func (b *Logging) Name() string {
	return "Logging"
}

// Recovery converts a panicking handler into an error so one bad handler
// cannot take the caller's goroutine down.
type Recovery struct{}

// NewRecovery creates a recovery behavior.
func NewRecovery() *Recovery {
	return &Recovery{}
}

// Handle implements dispatch.Behavior.
func (b *Recovery) Handle(ctx context.Context, request any, next dispatch.Handler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("handler panicked on %T: %v", request, r)
		}
	}()
	return next.Handle(ctx, request)
}

// Name implements dispatch.Behavior.
func (b *Recovery) Name() string {
	return "Recovery"
}

// Validator decides whether a request may be dispatched.
type Validator interface {
	Validate(ctx context.Context, request any) error
}

// Validation rejects requests the validator refuses before they reach the
// handler.
type Validation struct {
	validator Validator
}

// NewValidation creates a validation behavior.
func NewValidation(validator Validator) *Validation {
	return &Validation{validator: validator}
}

// Handle implements dispatch.Behavior.
func (b *Validation) Handle(ctx context.Context, request any, next dispatch.Handler) (any, error) {
	if err := b.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return next.Handle(ctx, request)
}

// Name implements dispatch.Behavior.
func (b *Validation) Name() string {
	return "Validation"
}

// Timeout bounds the rest of the pipeline with a context deadline.
type Timeout struct {
	timeout time.Duration
}

// NewTimeout creates a timeout behavior.
func NewTimeout(timeout time.Duration) *Timeout {
	return &Timeout{timeout: timeout}
}

// Handle implements dispatch.Behavior.
func (b *Timeout) Handle(ctx context.Context, request any, next dispatch.Handler) (any, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	type result struct {
		resp any
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := next.Handle(timeoutCtx, request)
		done <- result{resp: resp, err: err}
	}()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-timeoutCtx.Done():
		return nil, fmt.Errorf("request processing timeout after %v for %T: %w", b.timeout, request, timeoutCtx.Err())
	}
}

// Name implements dispatch.Behavior.
func (b *Timeout) Name() string {
	return "Timeout"
}

// Collector receives dispatch metrics.
type Collector interface {
	IncrementRequestCount(requestType string)
	RecordProcessingTime(requestType string, duration time.Duration)
	IncrementErrorCount(requestType string)
}

// Metrics reports request counts, durations, and failures to a Collector.
type Metrics struct {
	collector Collector
}

// NewMetrics creates a metrics behavior.
func NewMetrics(collector Collector) *Metrics {
	return &Metrics{collector: collector}
}

// Handle implements dispatch.Behavior.
func (b *Metrics) Handle(ctx context.Context, request any, next dispatch.Handler) (any, error) {
	start := time.Now()
	requestType := fmt.Sprintf("%T", request)

	b.collector.IncrementRequestCount(requestType)

	resp, err := next.Handle(ctx, request)
	b.collector.RecordProcessingTime(requestType, time.Since(start))

	if err != nil {
		b.collector.IncrementErrorCount(requestType)
	}

	return resp, err
}

// Name implements dispatch.Behavior.
func (b *Metrics) Name() string {
	return "Metrics"
}

// Processor runs before the handler sees the request.
type Processor interface {
	Process(ctx context.Context, request any) error
}

// ResponseProcessor runs after the handler produced a response.
type ResponseProcessor interface {
	Process(ctx context.Context, request any, response any) error
}

// PreProcessor runs a Processor before the handler. A processor error
// short-circuits the dispatch.
type PreProcessor struct {
	processor Processor
}

// NewPreProcessor creates a pre-processing behavior.
func NewPreProcessor(processor Processor) *PreProcessor {
	return &PreProcessor{processor: processor}
}

// Handle implements dispatch.Behavior.
func (b *PreProcessor) Handle(ctx context.Context, request any, next dispatch.Handler) (any, error) {
	if err := b.processor.Process(ctx, request); err != nil {
		return nil, err
	}
	return next.Handle(ctx, request)
}

// Name implements dispatch.Behavior.
func (b *PreProcessor) Name() string {
	return "PreProcessor"
}

// PostProcessor runs a ResponseProcessor after the handler succeeded. It
// never runs on a failed dispatch; its own error replaces a successful
// outcome.
type PostProcessor struct {
	processor ResponseProcessor
}

// NewPostProcessor creates a post-processing behavior.
func NewPostProcessor(processor ResponseProcessor) *PostProcessor {
	return &PostProcessor{processor: processor}
}

// Handle implements dispatch.Behavior.
func (b *PostProcessor) Handle(ctx context.Context, request any, next dispatch.Handler) (any, error) {
	resp, err := next.Handle(ctx, request)
	if err != nil {
		return resp, err
	}
	if err := b.processor.Process(ctx, request, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Name implements dispatch.Behavior.
func (b *PostProcessor) Name() string {
	return "PostProcessor"
}
