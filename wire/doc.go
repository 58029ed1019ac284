// Package wire implements the module's inter-process transmission
// format: one binary message per tree-reduction round, carrying a local
// point set and the edge list connecting it, and the reconstruction of
// that message back into a live quad-edge topology on the receiving
// side. The byte layout is little-endian, IEEE-754 binary64 throughout,
// framed with a length prefix and trailed with a CRC-32 so truncation or
// corruption in transit surfaces as a TransportError rather than a
// silently wrong triangulation.
package wire
