// Package control provides the BSV control blocks used to frame integers on
// the wire.
//
// BSV control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                      |
//  |---------------|---------------||----------------|--------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                     |
//  | 0 . 1 |                       || Data Size      | up to 64 bytes                       |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values           |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | up to 8 size bytes; 2^64 data bytes  |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                          |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)     |
//  |---------------|---------------||----------------|--------------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range. Data
// Size Size blocks are followed by the size (big-endian, without leading
// zero bytes) and then the data.
//
// The remaining prefixes (containers and skips) are reserved; the decoder
// reports them as unexpected bytes.
package control
