package protocol

// Error kinds for protocol failures.
// Server-raised errors are derived purely from the 3-digit status code;
// every Error carries the raw status line it was derived from.

// Kind identifies the category of a protocol error.
type Kind int

const (
	// KindUnparsableReply means the line carried no recognizable status code,
	// or the code is an error code absent from the classification tables.
	KindUnparsableReply Kind = iota

	// KindMalformedReply means the status line was well-formed but carried an
	// unexpected code.
	KindMalformedReply

	// KindRetriable covers temporary failures (420, 421); a later retry may
	// succeed. Nothing is retried here.
	KindRetriable

	// KindSyntax covers command/parameter syntax failures (50x).
	KindSyntax

	// KindAuth covers access/authentication failures (53x).
	KindAuth

	// KindSystem covers server resource failures (55x).
	KindSystem

	// Specializations of KindSystem, matched on the exact code before the
	// prefix tables are consulted.
	KindNoMatch      // 552
	KindNoDatabases  // 554
	KindNoStrategies // 555
)

func (k Kind) String() string {
	switch k {
	case KindUnparsableReply:
		return "unparsable reply"
	case KindMalformedReply:
		return "malformed reply"
	case KindRetriable:
		return "temporary failure"
	case KindSyntax:
		return "syntax error"
	case KindAuth:
		return "authentication failure"
	case KindSystem:
		return "system error"
	case KindNoMatch:
		return "no match"
	case KindNoDatabases:
		return "no databases present"
	case KindNoStrategies:
		return "no strategies available"
	}
	return "unknown error"
}

// Error is a protocol-level failure: a classified kind plus the raw status
// line that produced it. Callers switch on Kind or use errors.Is against the
// sentinel values below.
type Error struct {
	Kind Kind
	Line string
}

func (e *Error) Error() string {
	if e.Line == "" {
		return "dict: " + e.Kind.String()
	}
	return "dict: " + e.Kind.String() + ": " + e.Line
}

// Is reports kind equality, so errors.Is(err, ErrNoMatch) works across
// instances carrying different raw lines.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for errors.Is matching. The Line field is empty; matching
// is by Kind only.
var (
	ErrUnparsableReply = &Error{Kind: KindUnparsableReply}
	ErrMalformedReply  = &Error{Kind: KindMalformedReply}
	ErrRetriable       = &Error{Kind: KindRetriable}
	ErrSyntax          = &Error{Kind: KindSyntax}
	ErrAuth            = &Error{Kind: KindAuth}
	ErrSystem          = &Error{Kind: KindSystem}
	ErrNoMatch         = &Error{Kind: KindNoMatch}
	ErrNoDatabases     = &Error{Kind: KindNoDatabases}
	ErrNoStrategies    = &Error{Kind: KindNoStrategies}
)

// Exact-code classifications, consulted before the prefix table so that
// specific resource errors win over the generic 55x bucket.
var exactKinds = map[int]Kind{
	StatusNoMatch:               KindNoMatch,
	StatusNoDatabasesPresent:    KindNoDatabases,
	StatusNoStrategiesAvailable: KindNoStrategies,
}

// Two-digit prefix classifications for the general error buckets.
var prefixKinds = map[int]Kind{
	42: KindRetriable,
	50: KindSyntax,
	53: KindAuth,
	55: KindSystem,
}

// Classify maps an error status code to an *Error for the given raw line.
// Exact 3-digit matches are tried first, then the 2-digit prefix. Codes in
// neither table yield KindUnparsableReply.
func Classify(code int, line string) *Error {
	if kind, ok := exactKinds[code]; ok {
		return &Error{Kind: kind, Line: line}
	}
	if kind, ok := prefixKinds[code/10]; ok {
		return &Error{Kind: kind, Line: line}
	}
	return &Error{Kind: KindUnparsableReply, Line: line}
}
