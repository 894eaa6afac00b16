// Package utils provides shared helpers for seedxor commands.
//
// # Filesystem Utilities
//
//   - ExpandPaths: expands glob patterns in source arguments
//   - PathExists: reports whether a path is already taken
//   - FormatPaths: formats file paths for human-readable output
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether a file is attached to a terminal
package utils
