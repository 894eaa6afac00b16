// Package logger provides leveled logging for seedxor commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is colored with fatih/color and always goes to stderr, since
// stdout may carry mnemonic output.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags, only WarnfAlways messages are shown. Errors that end a
// command are returned from RunE and printed by the root command.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Splitting %s into %d shares", src, n)
package logger
