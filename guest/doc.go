// Package guest is the rendering-module side of the bridge. It encodes
// paths into verb and point streams, keeps a local copy of the host's
// paint state so unchanged styles are not re-sent, and, when built for
// wasip1, reaches the host through wasm imports from the "env" module.
package guest
