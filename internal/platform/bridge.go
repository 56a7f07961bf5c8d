package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/avren/desktop-agent/internal/model"
)

// DefaultBridgeTimeout bounds one scripting-bridge invocation when the
// caller's context carries no deadline. Accessibility walks of deep trees
// routinely take several seconds; exceeding this is fatal for the call.
const DefaultBridgeTimeout = 30 * time.Second

// MaxBridgeOutput caps the bytes accepted from a bridge process. Oversized
// output is treated as a fetch failure rather than buffered indefinitely.
const MaxBridgeOutput = 8 << 20

// cappedBuffer collects writes up to a limit and flags overflow.
type cappedBuffer struct {
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.buf.Len()+len(p) > b.limit {
		b.overflow = true
		remain := b.limit - b.buf.Len()
		if remain > 0 {
			b.buf.Write(p[:remain])
		}
		// Report success so the child keeps running to completion instead of
		// dying on a pipe error mid-walk.
		return len(p), nil
	}
	return b.buf.Write(p)
}

// RunBridge executes an external scripting bridge and returns its stdout.
// The returned string carries stderr (plus the exec error text) for
// signature classification by the caller.
func RunBridge(ctx context.Context, name string, args ...string) ([]byte, string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultBridgeTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	stdout := &cappedBuffer{limit: MaxBridgeOutput}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, stderr.String(), fmt.Errorf("%s timed out after %s", name, DefaultBridgeTimeout)
	}
	if err != nil {
		return nil, stderr.String(), fmt.Errorf("%s: %w", name, err)
	}
	if stdout.overflow {
		return nil, stderr.String(), fmt.Errorf("%s produced more than %d bytes of output", name, MaxBridgeOutput)
	}
	return stdout.buf.Bytes(), stderr.String(), nil
}

// DecodeRawTree parses the bridge's JSON payload into raw elements. Empty
// or whitespace-only output decodes to an empty tree, matching the bridges'
// "nothing to read" convention.
func DecodeRawTree(data []byte) ([]model.RawElement, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []model.RawElement{}, nil
	}
	var raw []model.RawElement
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("malformed bridge output: %w", err)
	}
	return raw, nil
}
