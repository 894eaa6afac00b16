// Package ui provides semantic text formatting for CLI output.
//
// Formatters render differently depending on terminal capabilities. With
// colors, content is colorized. When NO_COLOR is set or the terminal doesn't
// support colors, text decorations (backticks, quotes) are used instead.
//
//	ui.Code.Sprint("seedxor xor a.txt b.txt")  // Commands
//	ui.Path.Sprint("share-1.txt")             // File paths
//	ui.Success.Sprint("✓")                     // Success indicators
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Highlight.Sprint("3")                  // Counts and user values
//	ui.Muted.Sprint("stdout")                 // De-emphasized text
package ui
