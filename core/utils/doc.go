// Package utils provides tolerant conversions for loosely typed decoded JSON.
//
// Snapshot attributes arrive as whatever the poller happened to emit: numbers as floats,
// numbers as strings, or nothing at all. The helpers here never fail; they report whether
// a usable value was present so callers can store NULL instead.
package utils
