// Package decision holds the win/lose rule: a single byte read from the start
// of a stream is compared against the target character and mapped to one of
// two fixed outcomes. It knows nothing about files, arguments or exit codes.
package decision
