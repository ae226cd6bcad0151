package abitest

import (
	"github.com/tetratelabs/wabin/binary"
	"github.com/tetratelabs/wabin/leb128"
	"github.com/tetratelabs/wabin/wasm"
	"github.com/tetratelabs/wazero/api"
)

// MemoryExport is the export name of the memory declared by Module.Memory.
const MemoryExport = "memory"

// Instr is one encoded instruction.
type Instr []byte

// I32Const pushes v.
func I32Const(v int32) Instr {
	return append(Instr{wasm.OpcodeI32Const}, leb128.EncodeInt32(v)...)
}

// I64Const pushes v.
func I64Const(v int64) Instr {
	return append(Instr{wasm.OpcodeI64Const}, leb128.EncodeInt64(v)...)
}

// Call calls the function at index fn.
func Call(fn uint32) Instr {
	return append(Instr{wasm.OpcodeCall}, leb128.EncodeUint32(fn)...)
}

// Push pushes a raw wire word as a constant of type vt.
func Push(vt api.ValueType, w uint64) Instr {
	if vt == api.ValueTypeI64 {
		return I64Const(int64(w))
	}
	return I32Const(int32(uint32(w)))
}

// Module assembles a minimal core wasm module: function imports, one
// memory, active data segments and parameterless exported functions.
type Module struct {
	mod   wasm.Module
	funcs []string
}

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{}
}

// Import declares a function import without results and returns its
// function index. Imports take the first indices, in declaration order.
func (m *Module) Import(module, name string, params ...api.ValueType) uint32 {
	m.mod.ImportSection = append(m.mod.ImportSection, &wasm.Import{
		Type:     wasm.ExternTypeFunc,
		Module:   module,
		Name:     name,
		DescFunc: m.addType(params),
	})
	return uint32(len(m.mod.ImportSection) - 1)
}

// Memory declares a memory of the given pages, exported as MemoryExport.
func (m *Module) Memory(pages uint32) *Module {
	m.mod.MemorySection = &wasm.Memory{Min: pages}
	return m
}

// Data places b at offset when the module is instantiated.
func (m *Module) Data(offset uint32, b []byte) *Module {
	m.mod.DataSection = append(m.mod.DataSection, &wasm.DataSegment{
		OffsetExpression: &wasm.ConstantExpression{
			Opcode: wasm.OpcodeI32Const,
			Data:   leb128.EncodeInt32(int32(offset)),
		},
		Init: b,
	})
	return m
}

// Export defines a function of type () -> () running body.
func (m *Module) Export(name string, body ...Instr) *Module {
	var code []byte
	for _, in := range body {
		code = append(code, in...)
	}
	code = append(code, wasm.OpcodeEnd)

	m.funcs = append(m.funcs, name)
	m.mod.FunctionSection = append(m.mod.FunctionSection, m.addType(nil))
	m.mod.CodeSection = append(m.mod.CodeSection, &wasm.Code{Body: code})
	return m
}

// Forward defines an export that calls the import fn with the given wire
// words as constant arguments.
func (m *Module) Forward(name string, fn uint32, types []api.ValueType, words []uint64) *Module {
	body := make([]Instr, 0, len(words)+1)
	for i, w := range words {
		body = append(body, Push(types[i], w))
	}
	return m.Export(name, append(body, Call(fn))...)
}

func (m *Module) addType(params []api.ValueType) uint32 {
	m.mod.TypeSection = append(m.mod.TypeSection, &wasm.FunctionType{
		Params: append([]wasm.ValueType(nil), params...),
	})
	return uint32(len(m.mod.TypeSection) - 1)
}

// Encode returns the binary module. Defined functions are indexed after
// every import, whatever order they were declared in.
func (m *Module) Encode() []byte {
	mod := m.mod
	mod.ExportSection = nil
	if mod.MemorySection != nil {
		mod.ExportSection = append(mod.ExportSection, &wasm.Export{
			Type: wasm.ExternTypeMemory,
			Name: MemoryExport,
		})
	}
	imported := uint32(len(mod.ImportSection))
	for i, name := range m.funcs {
		mod.ExportSection = append(mod.ExportSection, &wasm.Export{
			Type:  wasm.ExternTypeFunc,
			Name:  name,
			Index: imported + uint32(i),
		})
	}
	return binary.EncodeModule(&mod)
}
