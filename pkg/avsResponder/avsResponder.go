package avsResponder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contractCaller"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/metrics"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/signer"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
	"go.uber.org/zap"
)

const (
	DefaultSubmissionTimeout = 2 * time.Minute
	DefaultMaxAttempts       = 1

	TaskGreetingPrefix = "Hello, "
)

type ContentValidator interface {
	Validate(content string) types.ValidationVerdict
}

type AvsResponderConfig struct {
	// SubmissionTimeout bounds each submission attempt, including waiting for the receipt.
	SubmissionTimeout time.Duration

	// MaxAttempts is the total number of tries for a submission that fails in transport.
	// Reverts and timeouts are never retried.
	MaxAttempts int

	// RetryBackoff is multiplied by the attempt number between retries.
	RetryBackoff time.Duration
}

// AvsResponder validates, attests and answers each decoded event. It satisfies
// chainPoller.IEventHandler.
type AvsResponder struct {
	config         *AvsResponderConfig
	validator      ContentValidator
	signer         signer.Signer
	contractCaller contractCaller.IContractCaller
	logger         *zap.Logger
}

func NewAvsResponder(
	cfg *AvsResponderConfig,
	validator ContentValidator,
	s signer.Signer,
	cc contractCaller.IContractCaller,
	logger *zap.Logger,
) *AvsResponder {
	c := &AvsResponderConfig{}
	if cfg != nil {
		*c = *cfg
	}
	if c.SubmissionTimeout <= 0 {
		c.SubmissionTimeout = DefaultSubmissionTimeout
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return &AvsResponder{
		config:         c,
		validator:      validator,
		signer:         s,
		contractCaller: cc,
		logger:         logger,
	}
}

// TaskMessage is the text attested for a task named name.
func TaskMessage(name string) string {
	return TaskGreetingPrefix + name
}

// HandleEvent only returns an error when ctx was cancelled before any network call was made,
// in which case the event has not been acted on. Every other failure is logged and swallowed.
func (ar *AvsResponder) HandleEvent(ctx context.Context, event types.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch e := event.(type) {
	case *types.TaskCreatedEvent:
		ar.handleTaskCreated(ctx, e)
	case *types.PasteCreatedEvent:
		ar.handlePasteCreated(ctx, e)
	default:
		ar.logger.Sugar().Warnw("Ignoring unsupported event", "event", fmt.Sprintf("%T", event))
	}
	return nil
}

func (ar *AvsResponder) handleTaskCreated(ctx context.Context, e *types.TaskCreatedEvent) {
	fields := []interface{}{
		"kind", e.Kind(),
		"taskIndex", e.TaskIndex,
		"taskName", e.Name,
		"blockNumber", e.BlockNumber,
		"transactionHash", e.TransactionHash.Hex(),
	}
	ar.logger.Sugar().Infow("Handling new task", fields...)

	signed, err := ar.signer.SignMessage(TaskMessage(e.Name))
	if err != nil {
		ar.logger.Sugar().Errorw("Failed to sign task response", append(fields, "error", err)...)
		metrics.SubmissionsTotal.WithLabelValues(string(e.Kind()), metrics.Status_Failed).Inc()
		return
	}

	task := contractCaller.TaskPayload{Name: e.Name, TaskCreatedBlock: e.TaskCreatedBlock}
	ar.submit(ctx, e.Kind(), fields, func(subCtx context.Context) error {
		_, err := ar.contractCaller.SubmitTaskResponse(subCtx, e.TaskIndex, task, signed.Signature)
		return err
	})
}

func (ar *AvsResponder) handlePasteCreated(ctx context.Context, e *types.PasteCreatedEvent) {
	pasteId := "<nil>"
	if e.Id != nil {
		pasteId = e.Id.String()
	}
	fields := []interface{}{
		"kind", e.Kind(),
		"pasteId", pasteId,
		"creator", e.Creator.Hex(),
		"blockNumber", e.BlockNumber,
		"transactionHash", e.TransactionHash.Hex(),
	}

	verdict := ar.validator.Validate(e.Content)
	metrics.ValidationVerdicts.WithLabelValues(strconv.FormatBool(verdict.IsValid)).Inc()
	fields = append(fields, "isValid", verdict.IsValid, "reason", verdict.Reason)
	ar.logger.Sugar().Infow("Validated paste", fields...)

	// the attestation covers the content, not the verdict
	signed, err := ar.signer.SignMessage(e.Content)
	if err != nil {
		ar.logger.Sugar().Errorw("Failed to sign paste validation", append(fields, "error", err)...)
		metrics.SubmissionsTotal.WithLabelValues(string(e.Kind()), metrics.Status_Failed).Inc()
		return
	}

	ar.submit(ctx, e.Kind(), fields, func(subCtx context.Context) error {
		_, err := ar.contractCaller.SubmitPasteValidation(subCtx, e.Id, verdict.IsValid, verdict.Reason, signed.Signature)
		return err
	})
}

// submit runs fn detached from ctx cancellation so shutdown never abandons a transaction
// that is already in flight. Backoff waits between retries do observe ctx.
func (ar *AvsResponder) submit(ctx context.Context, kind types.EventKind, fields []interface{}, fn func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)
	start := time.Now()
	defer func() {
		metrics.SubmissionLatency.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	for attempt := 1; ; attempt++ {
		attemptCtx, cancel := context.WithTimeout(detached, ar.config.SubmissionTimeout)
		err := fn(attemptCtx)
		timedOut := errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
		cancel()
		metrics.SubmissionAttempts.WithLabelValues(string(kind)).Inc()

		if err == nil {
			ar.logger.Sugar().Infow("Submitted response", append(fields, "attempt", attempt)...)
			metrics.SubmissionsTotal.WithLabelValues(string(kind), metrics.Status_Success).Inc()
			return
		}

		if timedOut || errors.Is(err, context.DeadlineExceeded) {
			ar.logger.Sugar().Errorw("Submission timed out, skipping event",
				append(fields, "attempt", attempt, "timeout", ar.config.SubmissionTimeout.String(), "error", err)...,
			)
			metrics.SubmissionsTotal.WithLabelValues(string(kind), metrics.Status_Timeout).Inc()
			return
		}

		if attempt >= ar.config.MaxAttempts || !contractCaller.IsRetryable(err) {
			ar.logger.Sugar().Errorw("Submission failed, skipping event",
				append(fields, "attempt", attempt, "reverted", errors.Is(err, contractCaller.ErrReverted), "error", err)...,
			)
			metrics.SubmissionsTotal.WithLabelValues(string(kind), metrics.Status_Failed).Inc()
			return
		}

		backoff := ar.config.RetryBackoff * time.Duration(attempt)
		ar.logger.Sugar().Warnw("Submission failed, retrying",
			append(fields, "attempt", attempt, "backoff", backoff.String(), "error", err)...,
		)
		select {
		case <-ctx.Done():
			ar.logger.Sugar().Warnw("Shutting down, abandoning submission retries", append(fields, "attempt", attempt)...)
			metrics.SubmissionsTotal.WithLabelValues(string(kind), metrics.Status_Skipped).Inc()
			return
		case <-time.After(backoff):
		}
	}
}
