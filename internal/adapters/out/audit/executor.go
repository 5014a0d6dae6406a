// Package audit records the outcome of every facade action: a log line, an
// OpenTelemetry span and counter, and a row in the action log.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"school/internal/core/domain/model/kernel"
	"school/internal/core/ports"
	"school/internal/pkg/command"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "school/internal/adapters/out/audit"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	attrFacade  = attribute.Key("school.facade")
	attrAction  = attribute.Key("school.action")
	attrCommand = attribute.Key("school.command_id")
	attrOutcome = attribute.Key("school.outcome")
)

// payload is the JSON document stored with each action record.
type payload struct {
	Input      string `json:"input"`
	ResultType string `json:"resultType,omitempty"`
	ResultID   int64  `json:"resultId,omitempty"`
}

// Executor implements command.ActionExecutor.
type Executor struct {
	log      ports.ActionLogRepository
	tracer   trace.Tracer
	actions  metric.Int64Counter
	duration metric.Float64Histogram
	logger   *slog.Logger
}

// NewExecutor creates an executor writing records to log. Spans and metrics
// go to the given providers.
func NewExecutor(
	log ports.ActionLogRepository,
	tracerProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger *slog.Logger,
) (*Executor, error) {
	if logger == nil {
		logger = slog.Default()
	}

	meter := meterProvider.Meter(instrumentationName)
	actions, err := meter.Int64Counter(
		"school.action.total",
		metric.WithDescription("Facade actions by outcome"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating school.action.total: %w", err)
	}
	duration, err := meter.Float64Histogram(
		"school.action.duration",
		metric.WithDescription("Duration of facade actions"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating school.action.duration: %w", err)
	}

	return &Executor{
		log:      log,
		tracer:   tracerProvider.Tracer(instrumentationName),
		actions:  actions,
		duration: duration,
		logger:   logger.With("component", "audit"),
	}, nil
}

func (e *Executor) CommitAction(ctx context.Context, action *command.ActionContext, c *command.Context) {
	e.record(ctx, action, c, ports.ActionCommitted)
}

func (e *Executor) RollbackAction(ctx context.Context, action *command.ActionContext, c *command.Context) {
	e.record(ctx, action, c, ports.ActionRolledBack)
}

func (e *Executor) record(
	ctx context.Context,
	action *command.ActionContext,
	c *command.Context,
	outcome ports.ActionOutcome,
) {
	ctx = context.WithoutCancel(ctx)
	commandID := c.Command().ID()
	attrs := []attribute.KeyValue{
		attrFacade.String(action.Facade),
		attrAction.String(action.Action),
		attrCommand.String(commandID),
		attrOutcome.String(string(outcome)),
	}

	_, span := e.tracer.Start(ctx, action.Facade+"."+action.Action,
		trace.WithTimestamp(action.StartedAt),
		trace.WithAttributes(attrs...),
	)
	if cause := c.Err(); cause != nil {
		span.RecordError(cause)
		span.SetStatus(codes.Error, cause.Error())
	}
	span.End(trace.WithTimestamp(action.FinishedAt))

	e.actions.Add(ctx, 1, metric.WithAttributes(attrs...))
	e.duration.Record(ctx, action.Duration().Seconds(), metric.WithAttributes(attrs...))

	record := ports.ActionRecord{
		ID:         action.ID,
		Facade:     action.Facade,
		Action:     action.Action,
		CommandID:  commandID,
		State:      c.State().String(),
		Outcome:    outcome,
		StartedAt:  action.StartedAt,
		FinishedAt: action.FinishedAt,
	}
	if cause := c.Err(); cause != nil {
		record.Error = cause.Error()
	}

	data, err := json.Marshal(newPayload(c))
	if err != nil {
		e.logger.WarnContext(ctx, "Failed to encode action payload", "action_id", action.ID, "error", err)
	} else {
		record.Payload = data
	}

	if err = e.log.Append(ctx, record); err != nil {
		e.logger.ErrorContext(ctx, "Failed to append action record",
			"action_id", action.ID, "command_id", commandID, "error", err)
		return
	}

	e.logger.InfoContext(ctx, "Action recorded",
		"action_id", action.ID,
		"facade", action.Facade,
		"action", action.Action,
		"command_id", commandID,
		"outcome", outcome,
		"duration", action.Duration(),
	)
}

func newPayload(c *command.Context) payload {
	p := payload{Input: c.Input().String()}

	result, ok := c.Result()
	if !ok || result == nil {
		return p
	}
	p.ResultType = fmt.Sprintf("%T", result)
	if identified, isEntity := result.(interface{ ID() kernel.ID }); isEntity {
		p.ResultID = identified.ID().Int64()
	}
	return p
}
