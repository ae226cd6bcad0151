package wazero_test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tzero "github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/abitest"
	"github.com/ruwak-dev/ruwak/errors"
	"github.com/ruwak-dev/ruwak/infrastructure/wazero"
)

// sendReceive builds a guest whose export send_<name> calls the host import
// receive_<name> with words, links imp and runs the export.
func sendReceive(t *testing.T, name string, words []uint64, imp wazero.Import, build func(*abitest.Module), opts ...wazero.AdapterOption) error {
	t.Helper()

	mod := abitest.NewModule()
	types := imp.Signature.WireTypes()
	fn := mod.Import("env", imp.Name, types...)
	if build != nil {
		build(mod)
	}
	mod.Forward("send_"+name, fn, types, words)

	guest := abitest.NewGuest(t, mod.Encode(), func(ctx context.Context, rt tzero.Runtime) error {
		_, err := wazero.RegisterWithRuntime(ctx, rt, []wazero.Import{imp}, opts...)
		return err
	})
	return guest.Call(context.Background(), "send_"+name)
}

func TestGuestSendsIntegers(t *testing.T) {
	var got any
	record := func(v any) { got = v }

	tests := []struct {
		name  string
		words []uint64
		fn    any
		want  any
	}{
		{"u8", []uint64{wazero.Lower(abi.U8, uint8(42))}, func(v uint8) { record(v) }, uint8(42)},
		{"u16", []uint64{wazero.Lower(abi.U16, uint16(42))}, func(v uint16) { record(v) }, uint16(42)},
		{"u32", []uint64{wazero.Lower(abi.U32, uint32(42))}, func(v uint32) { record(v) }, uint32(42)},
		{"u64", []uint64{wazero.Lower(abi.U64, uint64(42))}, func(v uint64) { record(v) }, uint64(42)},
		{"i8", []uint64{wazero.Lower(abi.I8, int8(42))}, func(v int8) { record(v) }, int8(42)},
		{"i16", []uint64{wazero.Lower(abi.I16, int16(42))}, func(v int16) { record(v) }, int16(42)},
		{"i32", []uint64{wazero.Lower(abi.I32, int32(42))}, func(v int32) { record(v) }, int32(42)},
		{"i64", []uint64{wazero.Lower(abi.I64, int64(42))}, func(v int64) { record(v) }, int64(42)},

		{"u8_max", []uint64{wazero.Lower(abi.U8, uint8(math.MaxUint8))}, func(v uint8) { record(v) }, uint8(math.MaxUint8)},
		{"u32_max", []uint64{wazero.Lower(abi.U32, uint32(math.MaxUint32))}, func(v uint32) { record(v) }, uint32(math.MaxUint32)},
		{"u64_max", []uint64{wazero.Lower(abi.U64, uint64(math.MaxUint64))}, func(v uint64) { record(v) }, uint64(math.MaxUint64)},
		{"i8_min", []uint64{wazero.Lower(abi.I8, int8(math.MinInt8))}, func(v int8) { record(v) }, int8(math.MinInt8)},
		{"i16_neg", []uint64{wazero.Lower(abi.I16, int16(-1))}, func(v int16) { record(v) }, int16(-1)},
		{"i32_min", []uint64{wazero.Lower(abi.I32, int32(math.MinInt32))}, func(v int32) { record(v) }, int32(math.MinInt32)},
		{"i64_min", []uint64{wazero.Lower(abi.I64, int64(math.MinInt64))}, func(v int64) { record(v) }, int64(math.MinInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			imp := wazero.MustBind("receive_"+tt.name, tt.fn)
			require.NoError(t, sendReceive(t, tt.name, tt.words, imp, nil))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuestSendsPointers(t *testing.T) {
	var gotConst abi.ConstPtr[uint32]
	var gotMut abi.MutPtr[int64]

	imp := wazero.MustBind("receive_ptrs", func(c abi.ConstPtr[uint32], m abi.MutPtr[int64]) {
		gotConst, gotMut = c, m
	})
	words := []uint64{
		wazero.Lower(abi.ConstPtrU32, abi.ConstPtr[uint32](1024)),
		wazero.Lower(abi.MutPtrI64, abi.MutPtr[int64](0xFFFFFFF8)),
	}

	require.NoError(t, sendReceive(t, "ptrs", words, imp, nil))
	assert.Equal(t, abi.ConstPtr[uint32](1024), gotConst)
	assert.Equal(t, abi.MutPtr[int64](0xFFFFFFF8), gotMut)
}

func TestGuestSendsString(t *testing.T) {
	var got string
	imp := wazero.MustBind("receive_str", func(s string) { got = strings.Clone(s) })

	err := sendReceive(t, "str", wazero.ViewWords(5, 64), imp, func(m *abitest.Module) {
		m.Memory(1).Data(64, []byte("hello"))
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestGuestSendsEmptyString(t *testing.T) {
	got := "unset"
	imp := wazero.MustBind("receive_str", func(s string) { got = s })

	err := sendReceive(t, "str", wazero.ViewWords(0, 0), imp, func(m *abitest.Module) {
		m.Memory(1)
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGuestSendsBytes(t *testing.T) {
	var got []byte
	imp := wazero.MustBind("receive_bytes", func(b []byte) { got = bytes.Clone(b) })

	err := sendReceive(t, "bytes", wazero.ViewWords(5, 100), imp, func(m *abitest.Module) {
		m.Memory(1).Data(100, []byte{1, 2, 3, 4, 5})
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestGuestSendsEightParameters(t *testing.T) {
	type call struct {
		a uint8
		b int16
		c uint32
		d int64
		e string
		f []byte
		g abi.ConstPtr[int8]
		h abi.MutPtr[uint64]
	}
	var got call

	imp := wazero.MustBind("receive_all", func(a uint8, b int16, c uint32, d int64, e string, f []byte, g abi.ConstPtr[int8], h abi.MutPtr[uint64]) {
		got = call{a, b, c, d, strings.Clone(e), bytes.Clone(f), g, h}
	})
	assert.Equal(t, 8, imp.Signature.Arity())
	assert.Equal(t, 10, imp.Signature.FlatCount())

	words := []uint64{
		wazero.Lower(abi.U8, uint8(42)),
		wazero.Lower(abi.I16, int16(-42)),
		wazero.Lower(abi.U32, uint32(42)),
		wazero.Lower(abi.I64, int64(-42)),
	}
	words = append(words, wazero.ViewWords(2, 16)...)
	words = append(words, wazero.ViewWords(3, 32)...)
	words = append(words,
		wazero.Lower(abi.ConstPtrI8, abi.ConstPtr[int8](48)),
		wazero.Lower(abi.MutPtrU64, abi.MutPtr[uint64](56)),
	)

	err := sendReceive(t, "all", words, imp, func(m *abitest.Module) {
		m.Memory(1).Data(16, []byte("hi")).Data(32, []byte{7, 8, 9})
	})
	require.NoError(t, err)
	assert.Equal(t, call{42, -42, 42, -42, "hi", []byte{7, 8, 9}, 48, 56}, got)
}

func TestGuestViewOutOfBounds(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	called := false
	imp := wazero.MustBind("receive_str", func(string) { called = true })

	// One page is 65536 bytes; [65532, 65537) runs one byte past the end.
	err := sendReceive(t, "str", wazero.ViewWords(5, 65532), imp, func(m *abitest.Module) {
		m.Memory(1)
	}, wazero.WithLogger(zap.New(core)))

	require.Error(t, err)
	assert.ErrorIs(t, err, abi.ErrOutOfBounds)
	assert.False(t, called)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "receive_str", logs.All()[0].ContextMap()["function"])
	assert.Equal(t, abitest.GuestName, logs.All()[0].ContextMap()["guest"])
}

func TestGuestViewAtEndOfMemory(t *testing.T) {
	var got []byte
	imp := wazero.MustBind("receive_bytes", func(b []byte) { got = bytes.Clone(b) })

	err := sendReceive(t, "bytes", wazero.ViewWords(4, 65532), imp, func(m *abitest.Module) {
		m.Memory(1).Data(65532, []byte{9, 9, 9, 9})
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 9, 9, 9}, got)
}

func TestGuestViewRangeOverflow(t *testing.T) {
	imp := wazero.MustBind("receive_bytes", func([]byte) {})

	err := sendReceive(t, "bytes", wazero.ViewWords(10, 0xFFFFFFFA), imp, func(m *abitest.Module) {
		m.Memory(1)
	})
	assert.ErrorIs(t, err, abi.ErrRangeOverflow)
}

func TestGuestWithoutMemory(t *testing.T) {
	imp := wazero.MustBind("receive_str", func(string) {})

	err := sendReceive(t, "str", wazero.ViewWords(1, 0), imp, nil)
	assert.ErrorIs(t, err, errors.New(errors.PhaseLift, errors.KindNotFound).Build())
}

func TestHandWrittenHandler(t *testing.T) {
	var view abi.GuestStringView
	var text string
	var n uint16

	imp := wazero.Import{
		Name:      "receive_view",
		Signature: abi.Describe2(abi.Func2[string, uint16](nil)),
		Handler: func(ctx context.Context, args *wazero.Args) {
			view = args.StringView()
			text = strings.Clone(view.AsString(args.Memory()))
			n = wazero.Lift(args, abi.U16)

			name, _ := wazero.FunctionNameFromContext(ctx)
			assert.Equal(t, "receive_view", name)
		},
	}
	words := append(wazero.ViewWords(3, 8), wazero.Lower(abi.U16, uint16(42)))

	err := sendReceive(t, "view", words, imp, func(m *abitest.Module) {
		m.Memory(1).Data(8, []byte("abc"))
	})
	require.NoError(t, err)
	assert.Equal(t, abi.StringViewOf(3, 8), view)
	assert.Equal(t, "abc", text)
	assert.Equal(t, uint16(42), n)
}

func TestNamedMemory(t *testing.T) {
	var got string
	imp := wazero.MustBind("receive_str", func(s string) { got = strings.Clone(s) })

	err := sendReceive(t, "str", wazero.ViewWords(2, 0), imp, func(m *abitest.Module) {
		m.Memory(1).Data(0, []byte("ok"))
	}, wazero.WithMemoryName("memory"))
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestRegisterRejectsInvalidImport(t *testing.T) {
	ctx := context.Background()
	rt := tzero.NewRuntime(ctx)
	defer rt.Close(ctx)

	_, err := wazero.RegisterWithRuntime(ctx, rt, []wazero.Import{{Name: "broken"}})
	assert.Error(t, err)
}

func TestGoModuleFunc(t *testing.T) {
	ctx := context.Background()
	rt := tzero.NewRuntime(ctx)
	defer rt.Close(ctx)

	var got int32
	imp := wazero.MustBind("receive_i32", func(v int32) { got = v })
	_, err := rt.NewHostModuleBuilder("custom").
		NewFunctionBuilder().
		WithGoModuleFunction(wazero.GoModuleFunc(imp), imp.Signature.WireTypes(), nil).
		Export("receive_i32").
		Instantiate(ctx)
	require.NoError(t, err)

	mod := abitest.NewModule()
	fn := mod.Import("custom", "receive_i32", api.ValueTypeI32)
	mod.Forward("send_i32", fn, []api.ValueType{api.ValueTypeI32}, []uint64{wazero.Lower(abi.I32, int32(-7))})

	guest, err := rt.Instantiate(ctx, mod.Encode())
	require.NoError(t, err)
	_, err = guest.ExportedFunction("send_i32").Call(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(-7), got)
}
