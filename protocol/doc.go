// Package protocol implements the wire-level codec for the DICT protocol
// (RFC 2229): request line formatting, status line parsing, the quoted-word
// tokenizer, dot-terminated body reading, greeting grammar, and the status
// code error taxonomy.
//
// Functions read from a *bufio.Reader over the connection and report server
// errors as *Error values classified from the 3-digit status code. The
// package holds no connection state; see the parent package for the session
// layer that drives it.
package protocol
