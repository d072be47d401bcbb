// Package logtail reads the tail of marquee's log file and highlights it
// for `marquee logs`.
//
// Read keeps a ring buffer of maxLines entries, so memory stays
// O(maxLines) regardless of file size and the file is scanned once. A
// missing file returns nil, nil; other I/O errors are wrapped.
//
// ColorizeLine understands the log/slog text handler format:
//
//	time=2026-01-02T15:04:05.000Z level=INFO msg="marquee started" version=dev
//
// The level is padded and colored, the timestamp dimmed, the attributes
// muted. Lines that do not match are returned unchanged.
package logtail
