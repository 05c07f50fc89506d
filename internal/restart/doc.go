// Package restart is the binary checkpoint codec for pair parameters.
//
// A restart stream is a flat little-endian sequence of fixed-size fields.
// Only the root rank of a [comm.Communicator] touches the stream: [Writer]
// drops writes on every other rank, and [Reader] reads on the root and then
// broadcasts each field, together with a status byte, to all ranks. Every
// rank therefore ends with bit-identical values, or every rank fails with
// [ErrRestartFormat] at the same field.
//
// Streams whose path ends in ".zst" are zstd-compressed (see [Create] and
// [Open]).
package restart
