// Package wasmtest assembles tiny wasm guests for tests of the host side
// of the bridge.
package wasmtest

// Value types.
const (
	I32 = 0x7F
	F32 = 0x7D
	F64 = 0x7C
)

// Uleb encodes v as unsigned LEB128.
func Uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

// Vec prefixes items with their count.
func Vec(items ...[]byte) []byte {
	out := Uleb(uint32(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

// Name encodes a length-prefixed string.
func Name(s string) []byte { return append(Uleb(uint32(len(s))), s...) }

// Section wraps content in a section with the given id.
func Section(id byte, content []byte) []byte {
	out := append([]byte{id}, Uleb(uint32(len(content)))...)
	return append(out, content...)
}

// Cat concatenates byte slices.
func Cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Module prepends the wasm header to sections.
func Module(sections ...[]byte) []byte {
	return Cat(append([][]byte{{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}}, sections...)...)
}

// FuncType encodes a function signature.
func FuncType(params []byte, results ...byte) []byte {
	return Cat([]byte{0x60}, Vec(split(params)...), Vec(split(results)...))
}

func split(b []byte) [][]byte {
	out := make([][]byte, len(b))
	for i := range b {
		out[i] = b[i : i+1]
	}
	return out
}

// F32Const encodes f32.const with little-endian bits.
func F32Const(bits ...byte) []byte { return append([]byte{0x43}, bits...) }

// Body encodes a function body with no locals.
func Body(code ...[]byte) []byte {
	b := Cat(append([][]byte{{0x00}}, append(code, []byte{0x0B})...)...)
	return append(Uleb(uint32(len(b))), b...)
}

// Call encodes call of function index fn.
func Call(fn uint32) []byte { return append([]byte{0x10}, Uleb(fn)...) }

func importFunc(field string, typ byte) []byte {
	return Cat(Name("env"), Name(field), []byte{0x00, typ})
}

func export(name string, kind, index byte) []byte {
	return Cat(Name(name), []byte{kind, index})
}

// Import names one env function and its parameter types.
type Import struct {
	Field  string
	Params []byte
}

// Forwarder exports one function per import, under the import's name,
// that passes its parameters straight through to the import. It defines
// no memory.
func Forwarder(imports ...Import) []byte {
	n := len(imports)
	types := make([][]byte, n)
	imps := make([][]byte, n)
	funcs := make([][]byte, n)
	exps := make([][]byte, n)
	bodies := make([][]byte, n)
	for i, imp := range imports {
		types[i] = FuncType(imp.Params)
		imps[i] = importFunc(imp.Field, byte(i))
		funcs[i] = []byte{byte(i)}
		exps[i] = export(imp.Field, 0x00, byte(n+i))
		code := make([][]byte, 0, len(imp.Params)+1)
		for j := range imp.Params {
			code = append(code, append([]byte{0x20}, Uleb(uint32(j))...))
		}
		bodies[i] = Body(append(code, Call(uint32(i)))...)
	}
	return Module(
		Section(1, Vec(types...)),
		Section(2, Vec(imps...)),
		Section(3, Vec(funcs...)),
		Section(7, Vec(exps...)),
		Section(10, Vec(bodies...)),
	)
}

// drawRect is the body of a draw(ctx, t) that fills l=1 t=2 r=3 b=4
// through import 0.
var drawRect = Body(
	[]byte{0x20, 0x00}, // local.get 0
	F32Const(0x00, 0x00, 0x80, 0x3F),
	F32Const(0x00, 0x00, 0x00, 0x40),
	F32Const(0x00, 0x00, 0x40, 0x40),
	F32Const(0x00, 0x00, 0x80, 0x40),
	[]byte{0x41, 0x00}, // i32.const 0
	Call(0),
)

// RectGuest exports draw(ctx, t), which fills the rectangle with edges
// l=1 t=2 r=3 b=4.
func RectGuest() []byte {
	return Module(
		Section(1, Vec(FuncType([]byte{I32, F32, F32, F32, F32, I32}), FuncType([]byte{I32, F64}))),
		Section(2, Vec(importFunc("ptrk_canvas_onDrawRect", 0))),
		Section(3, Vec([]byte{0x01})),
		Section(7, Vec(export("draw", 0x00, 0x01))),
		Section(10, Vec(drawRect)),
	)
}

// PathGuest keeps the points 10,10 50,50 at offset 0 and the verbs
// move, line, close at offset 16, and fills them from draw(ctx, t).
func PathGuest() []byte {
	body := Body(
		[]byte{0x20, 0x00},
		[]byte{0x41, 0x00}, // points at 0
		[]byte{0x41, 0x02}, // 2 points
		[]byte{0x41, 0x10}, // verbs at 16
		[]byte{0x41, 0x03}, // 3 verbs
		[]byte{0x41, 0x00}, // nonzero
		[]byte{0x41, 0x00}, // fill
		Call(0),
	)
	data := []byte{
		0x00, 0x00, 0x20, 0x41, 0x00, 0x00, 0x20, 0x41,
		0x00, 0x00, 0x48, 0x42, 0x00, 0x00, 0x48, 0x42,
		0x00, 0x01, 0x04,
	}
	return Module(
		Section(1, Vec(FuncType([]byte{I32, I32, I32, I32, I32, I32, I32}), FuncType([]byte{I32, F64}))),
		Section(2, Vec(importFunc("ptrk_canvas_onDrawPath", 0))),
		Section(3, Vec([]byte{0x01})),
		Section(5, Vec([]byte{0x00, 0x01})),
		Section(7, Vec(
			export("draw", 0x00, 0x01),
			export("memory", 0x02, 0x00),
		)),
		Section(10, Vec(body)),
		Section(11, Vec(Cat([]byte{0x00, 0x41, 0x00, 0x0B}, Uleb(uint32(len(data))), data))),
	)
}

// AllocOffset is where InteractiveGuest's ptrk_alloc places every
// allocation.
const AllocOffset = 1024

// InteractiveGuest draws like RectGuest and also exports
// dispatch_mouse_event, dispatch_key_down, ptrk_alloc and
// ptrk_file_dropped. The mouse, key and file hooks all request an
// animation frame. The key hook reports a key as handled when its code
// is not zero.
func InteractiveGuest() []byte {
	raf := Body(Call(1))
	alloc := Body([]byte{0x41, 0x80, 0x08}) // i32.const 1024
	key := Body(Call(1), []byte{0x20, 0x00})
	return Module(
		Section(1, Vec(
			FuncType([]byte{I32, F32, F32, F32, F32, I32}),
			FuncType(nil),
			FuncType([]byte{I32, F64}),
			FuncType([]byte{F32, F32, I32}),
			FuncType([]byte{I32}, I32),
			FuncType([]byte{I32, I32, I32, I32}),
			FuncType([]byte{I32, I32, I32}, I32),
		)),
		Section(2, Vec(
			importFunc("ptrk_canvas_onDrawRect", 0),
			importFunc("ptrk_request_animation_frame", 1),
		)),
		Section(3, Vec([]byte{0x02}, []byte{0x03}, []byte{0x04}, []byte{0x05}, []byte{0x06})),
		Section(5, Vec([]byte{0x00, 0x01})),
		Section(7, Vec(
			export("draw", 0x00, 0x02),
			export("dispatch_mouse_event", 0x00, 0x03),
			export("ptrk_alloc", 0x00, 0x04),
			export("ptrk_file_dropped", 0x00, 0x05),
			export("dispatch_key_down", 0x00, 0x06),
			export("memory", 0x02, 0x00),
		)),
		Section(10, Vec(drawRect, raf, alloc, raf, key)),
	)
}
