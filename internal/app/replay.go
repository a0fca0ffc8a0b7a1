package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/engine"
)

const maxReplayLine = 1 << 20

// Replay feeds a JSON-lines file of actions and engine events through the
// store, one line at a time, and writes the final state to w. Blank lines and
// lines starting with # are skipped. Middleware work started by a line
// finishes before the next line is read.
func (a *App) Replay(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReplayLine)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 || data[0] == '#' {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.replayLine(ctx, data); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		a.tasks.Wait()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading replay: %w", err)
	}
	out, err := json.MarshalIndent(a.store.State(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func (a *App) replayLine(ctx context.Context, data []byte) error {
	if engine.IsEvent(data) {
		ev, err := engine.ParseEvent(data)
		if err != nil {
			return err
		}
		if _, err := a.OpenWindow(ctx, ev.Window); err != nil {
			return err
		}
		session, err := a.Session(ev.Window, ev.Tab)
		if err != nil {
			return err
		}
		return ev.Apply(session)
	}
	act, err := action.Unmarshal(data)
	if err != nil {
		return err
	}
	if _, err := a.OpenWindow(ctx, act.Window()); err != nil {
		return err
	}
	a.store.Dispatch(act)
	return nil
}
