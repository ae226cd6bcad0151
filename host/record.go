package host

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/ruwak-dev/ruwak/abi"
	adapter "github.com/ruwak-dev/ruwak/infrastructure/wazero"
)

// Call is one boundary call observed by a Recorder.
type Call struct {
	Function string `json:"function" yaml:"function"`
	Args     []any  `json:"args" yaml:"args"`
}

// Recorder serves imports that lift their parameters and record them,
// for tracing a guest without writing host functions.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Import returns an import that records each call to name. Strings and
// byte slices are copied out of guest memory.
func (r *Recorder) Import(name string, sig abi.Signature) adapter.Import {
	params := sig.Params()
	return adapter.Import{
		Name:      name,
		Signature: sig,
		Handler: func(_ context.Context, args *adapter.Args) {
			values := make([]any, len(params))
			for i, k := range params {
				values[i] = retain(args.Value(k))
			}
			r.mu.Lock()
			r.calls = append(r.calls, Call{Function: name, Args: values})
			r.mu.Unlock()
		},
	}
}

// Calls returns the calls recorded so far, oldest first.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func retain(v any) any {
	switch x := v.(type) {
	case string:
		return strings.Clone(x)
	case []byte:
		return bytes.Clone(x)
	default:
		return v
	}
}
