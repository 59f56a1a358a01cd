// Package las holds the value-level primitives shared by the LAS point-cloud
// reader and writer.
//
// Responsibilities: the linear scale/offset transform between stored int32
// coordinates and real coordinates (Transform, Vector, Bounds), and the
// codec for fixed-width, null-padded ASCII header fields (DecodeString,
// DecodeStringLossy, EncodeString).
//
// Dependency rule: nothing in this package performs I/O or knows where a
// field sits inside a file. Callers hand in already-extracted buffers and
// raw integers.
package las
