// Package logtail reads the last lines of a growing text file.
//
// # Overview
//
// Tail is the read side of output following. The follower calls it on a
// timer and hands the result to the output store; nothing here keeps state
// between calls, so each call sees the file as it is at that moment.
//
//	lines, err := logtail.Tail("/var/log/build.log", 200)
//
// # Algorithm
//
// The file is scanned once from the start. Each line goes into a ring
// buffer sized to maxLines, overwriting the oldest entry once the ring is
// full:
//
//	maxLines = 3, file = a b c d e
//
//	push a   [a . .]
//	push b   [a b .]
//	push c   [a b c]
//	push d   [d b c]  next → b
//	push e   [d e c]  next → c
//	lines()  c d e
//
// Memory is bounded by the window, not the file size. Lines are returned
// oldest first with a trailing carriage return removed, so files written
// with CRLF endings read the same as LF files.
//
// # Limits
//
// A single line may be up to 1 MiB. A longer line stops the scan and Tail
// returns the scanner's error wrapped as "read <path>: ...". The follower
// counts that as a failed read and keeps showing the previous lines.
//
// # Edge Cases
//
//   - maxLines <= 0 returns nil without touching the file
//   - A file that does not exist yet returns nil and no error, so a follower
//     can be started before the producer creates it
//   - An empty file returns nil
//   - Any other open failure, such as missing permissions, returns an error
//     wrapped as "open <path>: ..."
//   - A path that opens but cannot be read as a file, such as a directory,
//     fails the scan and returns "read <path>: ..."
//
// # Thread Safety
//
// Tail has no shared state and may be called from any goroutine.
package logtail
