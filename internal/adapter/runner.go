package adapter

import (
	"context"
	"log/slog"
	"time"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	smithymiddleware "github.com/aws/smithy-go/middleware"

	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
	apperrors "github.com/rdsctl/rdsctl/pkg/errors"
)

// ClientSource hands out service clients. Clients are requested only after
// parameters are bound and confirmation has passed.
type ClientSource interface {
	API(ctx context.Context, region, profile string) (rdsapi.API, error)
	Diagnostics() rdsapi.Diagnostics
}

// Page is reported to a PageObserver after every page of a list call.
type Page struct {
	Operation  string
	Index      int
	Count      int
	NextMarker string
	Items      any
}

// PageObserver receives page notifications.
type PageObserver interface {
	OnPage(p Page)
}

// Recorder receives invocation statistics.
type Recorder interface {
	RecordInvocation(op, outcome string, d time.Duration)
	RecordPage(op string, items int)
	RecordError(op string, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordInvocation(string, string, time.Duration) {}
func (nopRecorder) RecordPage(string, int)                         {}
func (nopRecorder) RecordError(string, error)                      {}

// Runner executes operations against a ClientSource.
type Runner struct {
	clients   ClientSource
	confirmer Confirmer
	observer  PageObserver
	recorder  Recorder
	logger    *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithConfirmer sets the prompt used for destructive operations. Without
// one, destructive operations require Force.
func WithConfirmer(c Confirmer) Option {
	return func(r *Runner) { r.confirmer = c }
}

// WithPageObserver sets the observer notified for each fetched page.
func WithPageObserver(o PageObserver) Option {
	return func(r *Runner) { r.observer = o }
}

// WithRecorder sets the statistics sink.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner.
func NewRunner(clients ClientSource, opts ...Option) *Runner {
	r := &Runner{
		clients:  clients,
		recorder: nopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", component)
	return r
}

// Run executes one invocation and returns exactly one envelope. Failures
// are captured in the envelope rather than returned.
func (r *Runner) Run(ctx context.Context, d Descriptor, inv *Invocation) Envelope {
	if inv == nil {
		inv = NewInvocation(nil, Settings{})
	}
	info := d.Describe()

	r.logger.Debug("invoking operation",
		"operation", info.Name,
		"bound", inv.Names(),
		"destructive", info.Destructive)

	start := time.Now()
	env := d.run(ctx, r, inv)
	elapsed := time.Since(start)

	outcome := env.Kind.String()
	if env.Kind == KindError {
		switch {
		case apperrors.IsCode(env.Err, apperrors.ErrCodeConfirmationRequired),
			apperrors.IsCode(env.Err, apperrors.ErrCodeConfirmationDeclined):
			outcome = "refused"
			r.logger.Info("operation not confirmed", "operation", info.Name, "error", env.Err)
		default:
			r.logger.Warn("operation failed", "operation", info.Name, "error", env.Err)
		}
		r.recorder.RecordError(info.Name, env.Err)
	} else {
		r.logger.Debug("operation completed",
			"operation", info.Name,
			"kind", outcome,
			"request_id", env.RequestID,
			"pages", env.Pages,
			"duration", elapsed)
	}
	r.recorder.RecordInvocation(info.Name, outcome, elapsed)

	return env
}

// RunAsync runs the invocation on its own goroutine. The channel receives
// exactly one envelope and is then closed.
func (r *Runner) RunAsync(ctx context.Context, d Descriptor, inv *Invocation) <-chan Envelope {
	ch := make(chan Envelope, 1)
	go func() {
		defer close(ch)
		ch <- r.Run(ctx, d, inv)
	}()
	return ch
}

func (op *Operation[In, Out]) run(ctx context.Context, r *Runner, inv *Invocation) Envelope {
	req, err := buildRequest[In](&op.Info, inv)
	if err != nil {
		return errorEnvelope(op.Name, err)
	}

	if err := r.confirm(ctx, &op.Info, inv); err != nil {
		return errorEnvelope(op.Name, err)
	}

	settings := inv.Settings()
	api, err := r.clients.API(ctx, settings.Region, settings.Profile)
	if err != nil {
		return errorEnvelope(op.Name, enrich(op.Name, err, r.clients.Diagnostics()))
	}

	if op.Paging != nil {
		return op.runPaged(ctx, r, api, req, inv)
	}

	resp, err := op.Call(api, ctx, req)
	if err != nil {
		return errorEnvelope(op.Name, enrich(op.Name, err, r.clients.Diagnostics()))
	}
	return op.shape(resp, inv)
}

// shape turns a single response into an envelope according to the
// pass-through setting and the result selector.
func (op *Operation[In, Out]) shape(resp *Out, inv *Invocation) Envelope {
	requestID := requestIDOf(resp)

	if inv.Settings().PassThru && op.PassThru != "" {
		value, _ := inv.Lookup(op.PassThru)
		return resultEnvelope(op.Name, value, resp, requestID)
	}

	switch op.Select {
	case SelectAll:
		return resultEnvelope(op.Name, resp, resp, requestID)
	case SelectNone:
		return metadataEnvelope(op.Name, resp, requestID)
	}

	payload, err := selectField(resp, op.Select)
	if err != nil {
		return errorEnvelope(op.Name, internalError(op.Name, err))
	}
	return resultEnvelope(op.Name, payload, resp, requestID)
}

// requestIDOf reads the request id the SDK stores in ResultMetadata.
func requestIDOf(resp any) string {
	if resp == nil {
		return ""
	}
	md, err := selectField(resp, "ResultMetadata")
	if err != nil {
		return ""
	}
	metadata, ok := md.(smithymiddleware.Metadata)
	if !ok {
		return ""
	}
	id, _ := awsmiddleware.GetRequestIDMetadata(metadata)
	return id
}

// Static is a ClientSource that always returns the same API.
type Static struct {
	Client rdsapi.API
	Target rdsapi.Diagnostics
}

// API returns s.Client.
func (s Static) API(context.Context, string, string) (rdsapi.API, error) {
	return s.Client, nil
}

// Diagnostics returns s.Target.
func (s Static) Diagnostics() rdsapi.Diagnostics {
	return s.Target
}
