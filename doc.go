/*
Package qoi implements a decoder for the QOI ("Quite OK Image")
lossless image format.

A QOI stream is a 14-byte header followed by a byte-oriented opcode
stream: literal RGB/RGBA pixels, small diffs against the previous
pixel, lookups into a 64-slot color cache, and run-length repeats of
the previous pixel. Decode turns such a stream into flat RGBA8 pixel
data; the file-level helpers wrap the result into the standard image
interfaces and transparently decompress LZ4 and zstd compressed
inputs.

The package contains no encoder.
*/
package qoi
