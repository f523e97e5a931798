// Package function defines named ImageMagick command sequences and their
// persistence and execution.
//
// A Function is an ordered list of raw magick command strings. The Store
// persists each function as one pretty-printed JSON file named
// <name>.json under the platform functions directory
// (<data-dir>/magick-mcp/functions), resolving that directory on every
// call. Writes are last-writer-wins: there is no locking and no atomic
// rename, and a missing directory on List is an empty result rather than
// an error.
//
// The Runner replays a function's commands in order through a
// CommandRunner. A command may contain the literal placeholder $input,
// replaced in full by the caller-supplied input value before the command
// line is tokenized; a placeholder with no input aborts the run before
// that command executes. The first command failure aborts the remainder
// of the sequence.
package function
