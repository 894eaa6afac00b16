// Package linestream reads and writes newline-delimited mnemonic files.
//
// A Reader yields one raw line at a time until end of stream; a final line
// without a terminator is still returned. A Writer appends one line per call.
//
// Destinations are created through a Batch, which opens every path with
// exclusive-create semantics and removes all of them again if any single
// path cannot be created or the caller rolls back:
//
//	batch, err := linestream.CreateAll(paths)
//	if err != nil {
//	    return err // nothing was left behind
//	}
//	if err := work(batch.Writers()); err != nil {
//	    batch.Rollback()
//	    return err
//	}
//	return batch.Close()
package linestream
