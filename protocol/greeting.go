package protocol

import (
	"regexp"
	"strings"
)

// Greeting banner: "220 <text> [<capabilities>] <msg-id>" where the
// capability list is optional and the msg-id is an angle-bracketed
// local@domain token (RFC 2229 section 3.1).
var greetingPattern = regexp.MustCompile(`^220 (.*?) ?(?:<([^<>@]*)> )?(<[^<>]+@[^<>]+>)$`)

// Greeting holds the fields of the server's connection banner.
// The message id keeps its angle brackets: the authentication digest is
// computed over the id exactly as the server presented it.
type Greeting struct {
	Text         string
	Capabilities []string
	MessageID    string
}

// ParseGreeting matches the banner line against the greeting grammar.
// A line failing the grammar is a malformed reply.
func ParseGreeting(line string) (*Greeting, error) {
	m := greetingPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, &Error{Kind: KindMalformedReply, Line: line}
	}
	return &Greeting{
		Text:         m[1],
		Capabilities: strings.Fields(m[2]),
		MessageID:    m[3],
	}, nil
}

// Has reports whether the server advertised the named capability.
// Dot-joined capability tokens are honored, so Has("mime") is true for an
// advertised "auth.mime".
func (g *Greeting) Has(name string) bool {
	for _, token := range g.Capabilities {
		if token == name {
			return true
		}
		for _, part := range strings.Split(token, ".") {
			if part == name {
				return true
			}
		}
	}
	return false
}
