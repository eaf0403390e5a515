package host

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sergei-lamce/STraSAK/internal/project"
)

// maxEventLine bounds a single host stdout line; message events carry
// exception dumps that can get long.
const maxEventLine = 1024 * 1024

// run invokes one host operation, routing stream events to sink and
// decoding the final result payload into out. out may be nil for
// operations without a result; sink may be nil for operations that do not
// report progress.
func run(ctx context.Context, req request, sink project.Events, out *resultPayload) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode host request: %w", err)
	}

	cmd := CommandContext(ctx, Binary(), req.Op)
	cmd.Stdin = bytes.NewReader(body)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open host output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start automation host: %w", err)
	}

	var result *resultPayload
	var opErr error

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var ev event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			// Non-JSON noise from the host is ignored.
			continue
		}

		switch ev.Type {
		case "progress":
			dispatch(sink, func(s project.Events) { s.Progress(ev.Percent, ev.Status) })
		case "message":
			msg := project.Message{
				Source:    ev.Source,
				Level:     project.Level(ev.Level),
				Text:      ev.Text,
				Exception: ev.Exception,
			}
			dispatch(sink, func(s project.Events) { s.Message(msg) })
		case "result":
			result = ev.Result
		case "error":
			opErr = errors.New(ev.Text)
		}
	}
	scanErr := scanner.Err()
	waitErr := cmd.Wait()

	if opErr != nil {
		return opErr
	}
	if scanErr != nil {
		return fmt.Errorf("failed to read host output: %w", scanErr)
	}
	if waitErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("automation host failed: %s", msg)
		}
		return fmt.Errorf("automation host failed: %w", waitErr)
	}

	if out != nil {
		if result == nil {
			return errors.New("automation host returned no result")
		}
		*out = *result
	}
	return nil
}

// dispatch guards a single callback invocation. Events implementations are
// required not to panic, but a defective sink must not fault the in-flight
// operation or desync the event stream.
func dispatch(sink project.Events, fn func(project.Events)) {
	if sink == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn(sink)
}
