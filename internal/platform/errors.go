package platform

import (
	"fmt"
	"strings"
)

// PermissionError means the OS-level accessibility permission is missing.
// The message names the privacy setting to enable, since the caller-facing
// remedy differs completely from a transient fetch failure.
type PermissionError struct {
	Remedy string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("accessibility permission not granted: %s", e.Remedy)
}

// FetchError wraps any other failure from the OS accessibility call
// (timeout, crash, malformed output). Not retried at this layer.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to read accessibility tree: %v", e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// ClassifyBridgeError maps a scripting-bridge failure to the error taxonomy:
// output containing any of the platform's permission-denial signatures
// (matched case-insensitively) becomes a *PermissionError carrying remedy;
// everything else becomes a *FetchError wrapping cause.
func ClassifyBridgeError(cause error, output string, signatures []string, remedy string) error {
	lower := strings.ToLower(output)
	for _, sig := range signatures {
		if strings.Contains(lower, strings.ToLower(sig)) {
			return &PermissionError{Remedy: remedy}
		}
	}
	if output != "" {
		cause = fmt.Errorf("%w: %s", cause, strings.TrimSpace(output))
	}
	return &FetchError{Cause: cause}
}
