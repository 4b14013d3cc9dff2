// Command wasm is the demo guest. It runs the scene in internal/demo
// behind the bridge imports and exports the draw, mouse and file hooks the
// viewer calls.
//
// Build it with go generate in the repository root.
package main

func main() {}
