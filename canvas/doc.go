// Package canvas is the Canvas2D bridge: it resolves context handles to
// host surfaces, decodes wire arguments (packed colours, fill-rule flags,
// verb/coordinate path streams, gradient stop arrays) into transient
// values, and forwards each primitive to the surface as one host call.
//
// A Bridge owns nothing but its Registry. Surfaces hold all drawing state
// (paint styles, transform, clip), and every value the bridge builds is
// discarded once the host call returns.
//
// Input that the wire format cannot express safely is rejected at the
// boundary: coordinate streams must hold exactly the floats their verbs
// consume ([ErrCoordCount]) and gradient colour and position arrays must
// be the same length ([ErrStopCount]). Unrecognized path verbs are logged
// and skipped without consuming coordinates.
package canvas
