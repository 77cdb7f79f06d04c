// Package apng contains an Animated PNG (APNG) demuxer.
//
// The demuxer splits a byte stream into chunks and groups frame-control and
// frame-data chunks into frames. Pixel data is left compressed.
//
// refs:
// https://wiki.mozilla.org/APNG_Specification
// https://www.w3.org/TR/png/
package apng

// Signature is the PNG signature, found at the beginning of every stream.
const Signature = "\x89PNG\r\n\x1a\n"

const signatureValue = 0x89504E470D0A1A0A
