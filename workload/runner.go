package workload

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mughalk/csc301-a2/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Runner replays parsed workload steps against a service base URL. Workloads
// include lines that are expected to be rejected, so non-2xx responses are
// logged and the run continues.
type Runner struct {
	base   string
	client *http.Client
	logger log.Logger
}

// NewRunner creates a Runner targeting base (e.g. "http://127.0.0.1:8082").
// Panics on empty base or nil client or logger.
//
// Called from cmd/workload.
func NewRunner(base string, client *http.Client, logger log.Logger) *Runner {
	return &Runner{
		base:   strings.TrimSuffix(helpers.StrPanic(base, "workload.runner.go: base is required"), "/"),
		client: helpers.NilPanic(client, "workload.runner.go: client is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "workload.runner.go: logger is required"), "component", "WorkloadRunner"),
	}
}

// Run parses r line by line and sends each step. Parse errors and non-2xx
// responses are logged; the run stops only when ctx is cancelled or reading
// fails. Returns the count of steps sent.
func (w *Runner) Run(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	sent := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		step, ok, err := Parse(scanner.Text())
		if err != nil {
			level.Error(w.logger).Log("msg", "skipping malformed line", "line", lineNo, "err", err)
			continue
		}
		if !ok {
			continue
		}
		if err := w.send(ctx, lineNo, step); err != nil {
			level.Error(w.logger).Log("msg", "step failed", "line", lineNo, "err", err)
			continue
		}
		sent++
	}
	if err := scanner.Err(); err != nil {
		return sent, fmt.Errorf("reading workload: %w", err)
	}
	return sent, nil
}

func (w *Runner) send(ctx context.Context, lineNo int, step Step) error {
	var body io.Reader
	if step.Body != nil {
		payload, err := json.Marshal(step.Body)
		if err != nil {
			return fmt.Errorf("encoding body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, step.Method, w.base+step.Path, body)
	if err != nil {
		return err
	}
	if step.Body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	res, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	replyBody, _ := io.ReadAll(res.Body)

	if res.StatusCode >= 400 {
		level.Info(w.logger).Log(
			"msg", "step rejected",
			"line", lineNo,
			"method", step.Method,
			"path", step.Path,
			"status", res.StatusCode,
			"body", string(replyBody),
		)
	}
	return nil
}
