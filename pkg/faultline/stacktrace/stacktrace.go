// Package stacktrace captures call stacks for error events.
//
// A Stacktrace is opaque to the event that owns it beyond Frames, which is the
// serialized form placed in the payload.
package stacktrace

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// MaxFrames is the maximum number of frames kept in a single trace.
const MaxFrames = 200

// UnknownMethod is used for frames whose function cannot be resolved.
const UnknownMethod = "[unknown]"

// Options controls how captured frames are recorded.
type Options struct {
	// ProjectRoot marks frames whose file lives under it as in-project.
	ProjectRoot string

	// StripPath is trimmed from the front of every file name.
	StripPath string
}

// Frame is a single serialized stack frame.
type Frame struct {
	File       string `json:"file"`
	LineNumber int    `json:"lineNumber"`
	Method     string `json:"method"`
	InProject  bool   `json:"inProject,omitempty"`
}

// Stacktrace is an ordered list of frames, innermost first.
type Stacktrace struct {
	frames []Frame
}

// Current captures the stack of the calling goroutine. skip is the number of
// callers to omit above the caller of Current.
func Current(opts Options, skip int) *Stacktrace {
	pcs := make([]uintptr, MaxFrames)
	n := runtime.Callers(skip+2, pcs)
	return FromCallers(opts, pcs[:n])
}

// FromCallers builds a trace from return program counters as produced by
// runtime.Callers.
func FromCallers(opts Options, pcs []uintptr) *Stacktrace {
	st := &Stacktrace{}
	if len(pcs) == 0 {
		return st
	}

	frames := runtime.CallersFrames(pcs)
	for len(st.frames) < MaxFrames {
		f, more := frames.Next()
		if f.File != "" || f.Function != "" {
			st.frames = append(st.frames, newFrame(opts, f.File, f.Line, f.Function))
		}
		if !more {
			break
		}
	}
	return st
}

// FromBacktrace builds a trace from previously recorded program counters plus
// the site the error was raised at. The site becomes the top frame unless the
// recorded frames already start there.
func FromBacktrace(opts Options, pcs []uintptr, file string, line int) *Stacktrace {
	st := FromCallers(opts, pcs)
	if len(st.frames) == 0 {
		return FromFrame(opts, file, line)
	}
	if file == "" {
		return st
	}

	site := newFrame(opts, file, line, "")
	top := st.frames[0]
	if top.File == site.File && top.LineNumber == site.LineNumber {
		return st
	}

	frames := make([]Frame, 0, len(st.frames)+1)
	frames = append(frames, site)
	frames = append(frames, st.frames...)
	if len(frames) > MaxFrames {
		frames = frames[:MaxFrames]
	}
	return &Stacktrace{frames: frames}
}

// FromFrame builds a trace containing exactly one frame at file:line.
func FromFrame(opts Options, file string, line int) *Stacktrace {
	return &Stacktrace{frames: []Frame{newFrame(opts, file, line, "")}}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Recorded returns the frames recorded on err by github.com/pkg/errors along
// with the file and line of the first recorded frame. When several errors in
// the chain carry a stack, the innermost one wins. ok is false when no error in the chain carries a stack.
func Recorded(err error) (pcs []uintptr, file string, line int, ok bool) {
	var tracer stackTracer
	for ; err != nil; err = next(err) {
		if t, isTracer := err.(stackTracer); isTracer {
			tracer = t
		}
	}
	if tracer == nil {
		return nil, "", 0, false
	}

	st := tracer.StackTrace()
	if len(st) == 0 {
		return nil, "", 0, false
	}

	pcs = make([]uintptr, len(st))
	for i, f := range st {
		pcs[i] = uintptr(f)
	}

	site, _ := runtime.CallersFrames(pcs[:1]).Next()
	return pcs, site.File, site.Line, true
}

// next steps one level down err's chain, through Unwrap or Cause.
func next(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	if c, ok := err.(interface{ Cause() error }); ok {
		return c.Cause()
	}
	return nil
}

// Frames returns a copy of the serialized frames.
func (s *Stacktrace) Frames() []Frame {
	if s == nil {
		return []Frame{}
	}
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Len returns the number of frames.
func (s *Stacktrace) Len() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// Filter returns a new trace holding only the frames for which keep returns true.
func (s *Stacktrace) Filter(keep func(Frame) bool) *Stacktrace {
	out := &Stacktrace{}
	if s == nil {
		return out
	}
	for _, f := range s.frames {
		if keep(f) {
			out.frames = append(out.frames, f)
		}
	}
	return out
}

func newFrame(opts Options, file string, line int, method string) Frame {
	if method == "" {
		method = UnknownMethod
	}
	inProject := opts.ProjectRoot != "" && strings.HasPrefix(file, opts.ProjectRoot)
	if opts.StripPath != "" {
		file = strings.TrimPrefix(file, opts.StripPath)
	}
	return Frame{
		File:       file,
		LineNumber: line,
		Method:     method,
		InProject:  inProject,
	}
}
