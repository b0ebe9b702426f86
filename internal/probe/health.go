package probe

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/check"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region types

// Target is a deployed service exposing the standard gRPC health protocol.
type Target struct {
	Name      string        `yaml:"name"`
	Addr      string        `yaml:"addr"`
	Service   string        `yaml:"service"` // empty checks overall server health
	Timeout   time.Duration `yaml:"timeout"`
	SlowAfter time.Duration `yaml:"slow_after"` // responses slower than this fail with low severity
}

// #endregion types

// #region client-struct

// HealthEvaluator checks a target over gRPC. It satisfies check.Evaluator.
type HealthEvaluator struct {
	target Target
	conn   *grpc.ClientConn
	client healthpb.HealthClient
	now    func() time.Time
}

// #endregion client-struct

// #region constructor

// NewHealthEvaluator prepares a client for target. The connection is lazy;
// nothing is dialed until the first Evaluate.
func NewHealthEvaluator(target Target) (*HealthEvaluator, error) {
	conn, err := grpc.NewClient(target.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", target.Addr, err)
	}
	return &HealthEvaluator{
		target: target,
		conn:   conn,
		client: healthpb.NewHealthClient(conn),
		now:    time.Now,
	}, nil
}

// NewHealthEvaluatorWithClient creates an evaluator around an injected client.
// Used for testing without a real gRPC connection.
func NewHealthEvaluatorWithClient(target Target, client healthpb.HealthClient) *HealthEvaluator {
	return &HealthEvaluator{target: target, client: client, now: time.Now}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (h *HealthEvaluator) Close() error {
	if h.conn == nil {
		return nil
	}
	return h.conn.Close()
}

// #endregion close

// #region evaluate

// Evaluate issues one health Check RPC. Transport errors are returned as
// errors so the battery records them as execution failures.
func (h *HealthEvaluator) Evaluate(ctx context.Context) (check.Outcome, error) {
	timeout := h.target.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := h.now()
	resp, err := h.client.Check(ctx, &healthpb.HealthCheckRequest{Service: h.target.Service})
	elapsed := h.now().Sub(start)
	ms := float64(elapsed) / float64(time.Millisecond)
	if err != nil {
		return check.Outcome{DurationMs: ms}, fmt.Errorf("health rpc %s: %w", h.target.Addr, err)
	}

	status := resp.GetStatus()
	if status != healthpb.HealthCheckResponse_SERVING {
		return check.Outcome{
			Passed:     false,
			Severity:   record.SeverityCritical,
			DurationMs: ms,
			Detail:     fmt.Sprintf("%s reports %s", h.target.Name, status),
		}, nil
	}
	if h.target.SlowAfter > 0 && elapsed > h.target.SlowAfter {
		return check.Outcome{
			Passed:     false,
			Severity:   record.SeverityLow,
			DurationMs: ms,
			Detail:     fmt.Sprintf("%s answered in %s (limit %s)", h.target.Name, elapsed, h.target.SlowAfter),
		}, nil
	}
	return check.Outcome{Passed: true, DurationMs: ms, Detail: status.String()}, nil
}

// #endregion evaluate
