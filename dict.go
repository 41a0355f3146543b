// Package dict is a client for the DICT dictionary lookup protocol
// (RFC 2229).
//
// A Session owns one persistent connection and exposes the protocol
// operations: Define, Match, Databases, Strategies, Info, Help, Server,
// Status, Client, Authenticate, Quit. Session.Pipeline batches several
// requests into a single write while keeping responses paired to requests
// in order.
//
// Basic usage:
//
//	sess, err := dict.Dial(ctx, "dict.org")
//	if err != nil {
//		return err
//	}
//	defer sess.Close()
//
//	defs, err := sess.Define(ctx, "golang", "*")
//	if errors.Is(err, protocol.ErrNoMatch) {
//		// the word is not in any database
//	}
//
// The wire-level codec lives in the protocol subpackage.
package dict
