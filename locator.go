package dict

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

var ErrInvalidLocator = errors.New("dict: invalid locator")

// Locator operations
const (
	OpDefine = "d"
	OpMatch  = "m"
)

// Locator is a parsed dict resource locator:
//
//	dict://[user:secret@]host[:port]/d:word[:database[:n]]
//	dict://[user:secret@]host[:port]/m:word[:database[:strategy[:n]]]
//
// A missing database defaults to "*" (all databases) and a missing strategy
// to "." (the server default). The optional n selects one result, 1-based.
//
// For match locators over several databases the meaning of n is ambiguous:
// per-database lists have different sizes, so there is no canonical way to
// number the results. Here n indexes the flat, database-ordered word list;
// this is a documented limitation, not a promise of stable numbering across
// servers.
type Locator struct {
	Addr     string
	User     string
	Secret   string
	Op       string
	Word     string
	Database string
	Strategy string
	Index    int
}

// ParseLocator parses a dict:// resource locator.
func ParseLocator(raw string) (*Locator, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocator, err)
	}
	if u.Scheme != "dict" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidLocator, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidLocator)
	}

	l := &Locator{
		Addr:     u.Host,
		Database: "*",
		Strategy: ".",
	}
	if u.User != nil {
		l.User = u.User.Username()
		l.Secret, _ = u.User.Password()
	}

	parts := strings.Split(strings.TrimPrefix(u.Path, "/"), ":")
	l.Op = parts[0]
	if l.Op != OpDefine && l.Op != OpMatch {
		return nil, fmt.Errorf("%w: path must start with /d: or /m:", ErrInvalidLocator)
	}
	if len(parts) < 2 || parts[1] == "" {
		return nil, fmt.Errorf("%w: missing word", ErrInvalidLocator)
	}
	l.Word = parts[1]

	rest := parts[2:]
	if len(rest) > 0 && rest[0] != "" {
		l.Database = rest[0]
	}
	if len(rest) > 0 {
		rest = rest[1:]
	}
	if l.Op == OpMatch {
		if len(rest) > 0 && rest[0] != "" {
			l.Strategy = rest[0]
		}
		if len(rest) > 0 {
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: selector %q", ErrInvalidLocator, rest[0])
		}
		l.Index = n
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: trailing path components", ErrInvalidLocator)
	}
	return l, nil
}

// Execute opens a session to the locator's server, authenticates when
// credentials are present, performs the lookup, and renders the result to w.
func (l *Locator) Execute(ctx context.Context, w io.Writer) error {
	return l.ExecuteWith(ctx, nil, w)
}

// ExecuteWith executes like Execute using a custom Dialer.
func (l *Locator) ExecuteWith(ctx context.Context, dial Dialer, w io.Writer) error {
	sess, err := DialWith(ctx, dial, l.Addr)
	if err != nil {
		return err
	}
	defer sess.Close()

	if l.User != "" {
		if err := sess.Authenticate(ctx, l.User, l.Secret); err != nil {
			return err
		}
	}

	switch l.Op {
	case OpDefine:
		defs, err := sess.Define(ctx, l.Word, l.Database)
		if err != nil {
			return err
		}
		if err := renderDefinitions(w, defs, l.Index); err != nil {
			return err
		}
	case OpMatch:
		matches, err := sess.Match(ctx, l.Word, l.Strategy, l.Database)
		if err != nil {
			return err
		}
		if err := renderMatches(w, matches, l.Index); err != nil {
			return err
		}
	}

	return sess.Quit(ctx)
}

func renderDefinitions(w io.Writer, defs []Definition, index int) error {
	if index > 0 {
		if index > len(defs) {
			return fmt.Errorf("dict: definition %d of %d does not exist", index, len(defs))
		}
		d := defs[index-1]
		_, err := fmt.Fprintf(w, "From %s [%s]:\n\n%s\n", d.Database, d.Description, d.Text())
		return err
	}

	if _, err := fmt.Fprintf(w, "%d definitions found\n", len(defs)); err != nil {
		return err
	}
	for _, d := range defs {
		if _, err := fmt.Fprintf(w, "\nFrom %s [%s]:\n\n%s\n", d.Database, d.Description, d.Text()); err != nil {
			return err
		}
	}
	return nil
}

func renderMatches(w io.Writer, matches Matches, index int) error {
	if index > 0 {
		words := matches.AllWords()
		if index > len(words) {
			return fmt.Errorf("dict: match %d of %d does not exist", index, len(words))
		}
		_, err := fmt.Fprintln(w, words[index-1])
		return err
	}

	if _, err := fmt.Fprintf(w, "%d matches found\n", matches.Count()); err != nil {
		return err
	}
	for _, g := range matches {
		if _, err := fmt.Fprintf(w, "%s: %s\n", g.Database, strings.Join(g.Words, ", ")); err != nil {
			return err
		}
	}
	return nil
}
