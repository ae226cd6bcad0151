// Package wazero adapts boundary imports to the wazero runtime.
//
// This package bridges the pure conversions of package abi and the wazero
// WebAssembly runtime. It handles:
//
//   - Reading wire words off the wazero value stack in declaration order
//   - Lifting them with the table codecs and reconstructing views against
//     the calling guest's memory
//   - Registering handlers with the wazero host module builder
//   - Logging boundary faults with zap before re-raising them
//
// # Basic Usage
//
//	recv, err := wazero.Bind("receive_str", func(s string, n uint8) {
//	    fmt.Println(strings.Clone(s), n)
//	})
//	if err != nil {
//	    return err
//	}
//
//	runtime := wazero.NewRuntime(ctx)
//	_, err = wazero.RegisterWithRuntime(ctx, runtime, []wazero.Import{recv},
//	    wazero.WithModuleName("env"),
//	    wazero.WithLogger(logger),
//	)
//
// # Hand-written Handlers
//
// Handlers that want to see the views before reconstructing them read the
// stack themselves:
//
//	imp := wazero.Import{
//	    Name:      "receive_view",
//	    Signature: abi.Describe1(abi.Func1[string](nil)),
//	    Handler: func(ctx context.Context, args *wazero.Args) {
//	        v := args.StringView()
//	        if v.Len() > limit {
//	            return
//	        }
//	        use(v.AsString(args.Memory()))
//	    },
//	}
//
// # Faults
//
// A fault raised by a handler is a panic carrying an *errors.Error. wazero
// recovers it and returns it, wrapped, from the guest's call, so
//
//	errors.Is(err, abi.ErrOutOfBounds)
//
// holds for the error the embedding application sees.
package wazero
