// SPDX-License-Identifier: MIT

// Package batch evaluates tr_h or cond for a stream of newline-delimited
// inputs on a fixed-size worker pool.
//
// Contract of Runner.Run:
//
//   - Lines are trimmed; lines that do not parse as uint64 are skipped
//     without output or error.
//   - Every valid input is computed independently; a failed computation is
//     logged, counted and omitted. It never stops the batch.
//   - Each result is written as "n<TAB>value\n" through one serialized sink.
//     Only the write is under the lock, never the computation.
//   - Output order is NOT the input order when Workers > 1: results leave as
//     workers finish. Config.Ordered buffers finished results and releases
//     them in input order instead.
//   - Read failures return ErrIO; write failures abort the run with the
//     writer's error. Cancelling ctx stops dispatching new lines; computations
//     already started finish and are emitted.
package batch
