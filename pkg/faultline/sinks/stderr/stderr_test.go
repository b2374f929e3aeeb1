package stderr

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/strongdm/faultline/pkg/faultline"
	"github.com/strongdm/faultline/pkg/faultline/stacktrace"
)

func testNotification() faultline.Notification {
	return faultline.Notification{
		ID:          "ntf-123",
		Fingerprint: "abc123def456",
		Payload: faultline.Payload{
			Context:  "GET /users",
			Severity: faultline.SeverityError,
			Exceptions: []faultline.Exception{{
				ErrorClass: "Overheat",
				Message:    "core too hot",
				Stacktrace: []stacktrace.Frame{
					{File: "reactor/core.go", LineNumber: 42, Method: "reactor.(*Core).Step"},
				},
			}},
			MetaData: map[string]any{
				"reactor": map[string]any{"id": 7},
			},
		},
	}
}

func TestStderrSink_ImplementsSinkInterface(t *testing.T) {
	var _ faultline.Sink = NewStderrSink()
}

func TestStderrSink_Write_FormatsOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStderrSink(WithWriter(&buf))

	if err := sink.Write(context.Background(), testNotification()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"[FAULTLINE]", "ERROR", "Overheat", "(context: GET /users)", "core too hot", "abc123def456"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Stack trace:") {
		t.Error("Stack trace should only be printed in verbose mode")
	}
}

func TestStderrSink_Write_Verbose(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStderrSink(WithVerbose(), WithWriter(&buf))

	if err := sink.Write(context.Background(), testNotification()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Stack trace:", "reactor.(*Core).Step", "reactor/core.go:42", "Metadata:", "reactor.id: 7"} {
		if !strings.Contains(output, want) {
			t.Errorf("Verbose output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestStderrSink_Write_NoContext(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStderrSink(WithWriter(&buf))

	n := testNotification()
	n.Payload.Context = ""
	_ = sink.Write(context.Background(), n)

	if strings.Contains(buf.String(), "context:") {
		t.Errorf("Output should omit empty context, got:\n%s", buf.String())
	}
}

func TestFormatMetaData_Sorted(t *testing.T) {
	lines := formatMetaData(map[string]any{
		"b": 2,
		"a": map[string]any{"z": "last", "c": []any{1, 2}},
	})

	want := []string{"a.c: [1 2]", "a.z: last", "b: 2"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestStderrSink_FlushAndClose(t *testing.T) {
	sink := NewStderrSink()
	if err := sink.Flush(context.Background()); err != nil {
		t.Errorf("Flush returned error: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
