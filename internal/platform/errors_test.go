package platform

import (
	"errors"
	"testing"
)

var testSignatures = []string{
	"assistive access",
	"not authorized to send apple events",
}

func TestClassifyBridgeError_PermissionSignature(t *testing.T) {
	tests := []string{
		"execution error: System Events got an error: osascript is not allowed assistive access. (-25211)",
		"Not authorized to send Apple events to System Events.",
		"ASSISTIVE ACCESS required",
	}
	for _, output := range tests {
		err := ClassifyBridgeError(errors.New("exit status 1"), output, testSignatures, "enable the setting")
		var perm *PermissionError
		if !errors.As(err, &perm) {
			t.Errorf("ClassifyBridgeError(%q) = %T, want *PermissionError", output, err)
			continue
		}
		if perm.Remedy != "enable the setting" {
			t.Errorf("remedy = %q, want %q", perm.Remedy, "enable the setting")
		}
	}
}

func TestClassifyBridgeError_OtherFailure(t *testing.T) {
	cause := errors.New("exit status 1")
	err := ClassifyBridgeError(cause, "syntax error near line 3", testSignatures, "enable the setting")

	var fetch *FetchError
	if !errors.As(err, &fetch) {
		t.Fatalf("got %T, want *FetchError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("FetchError does not wrap the original cause")
	}
}

func TestClassifyBridgeError_EmptyOutput(t *testing.T) {
	cause := errors.New("signal: killed")
	err := ClassifyBridgeError(cause, "", testSignatures, "enable the setting")

	var fetch *FetchError
	if !errors.As(err, &fetch) {
		t.Fatalf("got %T, want *FetchError", err)
	}
	if fetch.Cause != cause {
		t.Errorf("cause = %v, want the original error untouched", fetch.Cause)
	}
}
