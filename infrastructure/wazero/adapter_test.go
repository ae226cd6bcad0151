package wazero

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tzero "github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/abitest"
	"github.com/ruwak-dev/ruwak/errors"
	"github.com/ruwak-dev/ruwak/internal/testutil"
)

func TestDefaultAdapterConfig(t *testing.T) {
	cfg := defaultAdapterConfig()

	assert.Equal(t, "env", cfg.ModuleName)
	assert.Empty(t, cfg.MemoryName)
	assert.Nil(t, cfg.Logger)
	assert.Empty(t, cfg.Middleware)
}

func TestAdapterOptions(t *testing.T) {
	l := zap.NewExample()
	cfg := newAdapterConfig([]AdapterOption{
		WithModuleName("custom_module"),
		WithMemoryName("mem2"),
		WithLogger(l),
		WithMiddleware(Trace(l), Trace(l)),
	})

	assert.Equal(t, "custom_module", cfg.ModuleName)
	assert.Equal(t, "mem2", cfg.MemoryName)
	assert.Same(t, l, cfg.Logger)
	assert.Len(t, cfg.Middleware, 2)
}

func TestNewAdapterConfigDefaultsLogger(t *testing.T) {
	cfg := newAdapterConfig(nil)
	assert.NotNil(t, cfg.Logger)
}

func TestEncodeDecode(t *testing.T) {
	assert.Equal(t, uint64(0xFFFFFFFF), Encode(int32(-1)))
	assert.Equal(t, int32(-1), Decode[int32](Encode(int32(-1))))
	assert.Equal(t, int32(math.MinInt32), Decode[int32](Encode(int32(math.MinInt32))))
	assert.Equal(t, uint32(math.MaxUint32), Decode[uint32](Encode(uint32(math.MaxUint32))))
	assert.Equal(t, int64(math.MinInt64), Decode[int64](Encode(int64(math.MinInt64))))
	assert.Equal(t, uint64(math.MaxUint64), Decode[uint64](Encode(uint64(math.MaxUint64))))
}

func TestLowerThenLift(t *testing.T) {
	stack := []uint64{
		Lower(abi.U8, uint8(250)),
		Lower(abi.I8, int8(-1)),
		Lower(abi.I16, int16(math.MinInt16)),
		Lower(abi.U64, uint64(math.MaxUint64)),
		Lower(abi.MutPtrI32, abi.MutPtr[int32](0x1234)),
	}
	args := NewArgs(nil, stack, "")

	assert.Equal(t, 5, args.Words())
	assert.Equal(t, uint8(250), Lift(args, abi.U8))
	assert.Equal(t, int8(-1), Lift(args, abi.I8))
	assert.Equal(t, int16(math.MinInt16), Lift(args, abi.I16))
	assert.Equal(t, uint64(math.MaxUint64), Lift(args, abi.U64))
	assert.Equal(t, abi.MutPtr[int32](0x1234), Lift(args, abi.MutPtrI32))
	assert.Zero(t, args.Remaining())
}

func TestArgsViews(t *testing.T) {
	stack := append(ViewWords(5, 64), ViewWords(3, 128)...)
	args := NewArgs(nil, stack, "")

	sv := args.StringView()
	assert.Equal(t, uint32(5), sv.Len())
	assert.Equal(t, uint32(64), sv.Ptr())

	mv := args.MemoryView()
	assert.Equal(t, uint32(3), mv.Len())
	assert.Equal(t, uint32(128), mv.Ptr())
}

func TestArgsReadPastEnd(t *testing.T) {
	args := NewArgs(nil, []uint64{1}, "")
	args.Word()

	testutil.RequireFault(t, errors.New(errors.PhaseLift, errors.KindArity).Build(), func() {
		args.Word()
	})
}

func TestArgsWithoutMemory(t *testing.T) {
	args := NewArgs(nil, ViewWords(1, 0), "")

	testutil.RequireFault(t, errors.New(errors.PhaseLift, errors.KindNotFound).Build(), func() {
		_ = args.Str()
	})
}

func TestGuestMemoryNilModule(t *testing.T) {
	assert.Nil(t, GuestMemory(nil, ""))
}

func TestGuestMemoryModuleWithoutMemory(t *testing.T) {
	ctx := context.Background()
	rt := tzero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, abitest.NewModule().Export("run").Encode())
	require.NoError(t, err)

	assert.Nil(t, GuestMemory(mod, ""))
	assert.Nil(t, GuestMemory(mod, "memory"))

	args := NewArgs(mod, []uint64{1, 0}, "")
	testutil.RequireFault(t, errors.New(errors.PhaseLift, errors.KindNotFound).Build(), func() {
		args.Str()
	})
}

func TestImportValidate(t *testing.T) {
	sig, err := abi.NewSignature(abi.KindU8)
	require.NoError(t, err)
	noop := func(context.Context, *Args) {}

	tests := []struct {
		name    string
		imp     Import
		wantErr string
	}{
		{name: "valid", imp: Import{Name: "f", Signature: sig, Handler: noop}},
		{name: "no name", imp: Import{Signature: sig, Handler: noop}, wantErr: "no name"},
		{name: "no handler", imp: Import{Name: "f", Signature: sig}, wantErr: "no handler"},
		{name: "zero signature", imp: Import{Name: "f", Handler: noop}, wantErr: "arity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.imp.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, args *Args) {
				order = append(order, name)
				next(ctx, args)
			}
		}
	}

	h := chain(func(context.Context, *Args) { order = append(order, "handler") },
		[]Middleware{mark("outer"), mark("inner")})
	h(context.Background(), NewArgs(nil, nil, ""))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := Trace(zap.New(core))(func(context.Context, *Args) {})

	ctx := WithGuestName(WithFunctionName(context.Background(), "receive_u8"), "guest")
	h(ctx, NewArgs(nil, []uint64{42}, ""))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "host call", entry.Message)
	assert.Equal(t, "receive_u8", entry.ContextMap()["function"])
	assert.Equal(t, "guest", entry.ContextMap()["guest"])
	assert.Equal(t, int64(1), entry.ContextMap()["words"])
}

func TestLogFaultsReraises(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := logFaults(zap.New(core))(func(_ context.Context, args *Args) {
		abi.StringViewOf(10, 0xFFFFFFFA).AsString(nil)
	})

	ctx := WithFunctionName(context.Background(), "receive_str")
	testutil.RequireFault(t, abi.ErrRangeOverflow, func() {
		h(ctx, NewArgs(nil, nil, ""))
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "boundary fault", entry.Message)
	assert.Equal(t, "receive_str", entry.ContextMap()["function"])
	assert.Contains(t, entry.ContextMap(), "details")
}

func TestContextNames(t *testing.T) {
	ctx := context.Background()

	_, ok := GuestNameFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, GetGuestName(ctx, nil))

	ctx = WithGuestName(ctx, "plugin")
	name, ok := GuestNameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "plugin", name)
	assert.Equal(t, "plugin", GetGuestName(ctx, nil))

	ctx = WithFunctionName(ctx, "receive_u8")
	fn, ok := FunctionNameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "receive_u8", fn)
}

func TestBindRejectsIneligible(t *testing.T) {
	tests := []struct {
		name string
		fn   any
	}{
		{"not a function", 42},
		{"result", func(uint8) uint8 { return 0 }},
		{"no params", func() {}},
		{"unsupported param", func(float64) {}},
		{"too many", func(uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8) {}},
		{"nil function", (func(uint8))(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bind("f", tt.fn)
			assert.Error(t, err)
		})
	}
}

func TestLiftersCoverEveryKind(t *testing.T) {
	for _, k := range abi.Kinds() {
		assert.Contains(t, lifters, k, "no lifter for %s", k)
	}
}
