package faultline

import (
	"testing"

	"github.com/strongdm/faultline/pkg/faultline/stacktrace"
)

func payloadWith(class, msg string, frames ...stacktrace.Frame) Payload {
	return Payload{Exceptions: []Exception{{ErrorClass: class, Message: msg, Stacktrace: frames}}}
}

func TestFingerprint_Length(t *testing.T) {
	fp := Fingerprint(payloadWith("Overheat", "m"))
	if len(fp) != 32 {
		t.Errorf("Fingerprint length = %d, want 32", len(fp))
	}
}

func TestFingerprint_IgnoresMessageAndLines(t *testing.T) {
	a := Fingerprint(payloadWith("Overheat", "core 1 too hot",
		stacktrace.Frame{File: "a.go", LineNumber: 10, Method: "reactor.Step"}))
	b := Fingerprint(payloadWith("Overheat", "core 2 too hot",
		stacktrace.Frame{File: "b.go", LineNumber: 99, Method: "reactor.Step"}))

	if a != b {
		t.Errorf("fingerprints differ: %s vs %s", a, b)
	}
}

func TestFingerprint_DiffersByClassAndMethod(t *testing.T) {
	base := Fingerprint(payloadWith("Overheat", "", stacktrace.Frame{Method: "reactor.Step"}))

	if base == Fingerprint(payloadWith("Meltdown", "", stacktrace.Frame{Method: "reactor.Step"})) {
		t.Error("different error classes should not share a fingerprint")
	}
	if base == Fingerprint(payloadWith("Overheat", "", stacktrace.Frame{Method: "reactor.Cool"})) {
		t.Error("different top frames should not share a fingerprint")
	}
}

func TestFingerprint_OnlyTopThreeFrames(t *testing.T) {
	frames := []stacktrace.Frame{{Method: "a"}, {Method: "b"}, {Method: "c"}}
	a := Fingerprint(payloadWith("E", "", append(frames, stacktrace.Frame{Method: "d"})...))
	b := Fingerprint(payloadWith("E", "", append(frames, stacktrace.Frame{Method: "z"})...))

	if a != b {
		t.Error("frames below the third should not affect the fingerprint")
	}
}

func TestFingerprint_NoExceptions(t *testing.T) {
	if fp := Fingerprint(Payload{}); len(fp) != 32 {
		t.Errorf("Fingerprint of empty payload = %q", fp)
	}
}
