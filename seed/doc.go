// Package seed deterministically encodes text into an
// arbitrary-precision integer.
//
// The text is expanded to its UTF-8 byte sequence and the bytes are
// read big-endian as one non-negative integer: the first byte of the
// sequence becomes the most significant. "A" encodes to 65, "AB" to
// 0x4142, and the empty string to 0. The output depends only on the
// input text, never on which encoder instance performed the encoding.
package seed
