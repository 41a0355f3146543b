package dict

import (
	"strings"

	"github.com/pior/dict/protocol"
)

// MetaData describes a listable server resource: a database or a match
// strategy. Immutable once constructed.
type MetaData struct {
	Name        string
	Description string
}

// Definition is one dictionary entry returned by DEFINE. Immutable once
// constructed.
type Definition struct {
	Word        string
	Database    string
	Description string // description of the source database
	Body        []string
}

// Text returns the definition body as one multi-line string.
func (d Definition) Text() string {
	return strings.Join(d.Body, "\n")
}

// MatchGroup holds the words matched in one database, in server order.
type MatchGroup struct {
	Database string
	Words    []string
}

// Matches groups matched words by database, preserving the order databases
// first appear in the response. Words matched under the same database on
// separate lines accumulate into one group.
type Matches []MatchGroup

// Lookup returns the words matched in the named database, or nil.
func (m Matches) Lookup(database string) []string {
	for _, g := range m {
		if g.Database == database {
			return g.Words
		}
	}
	return nil
}

// AllWords returns every matched word in database order, flattened.
func (m Matches) AllWords() []string {
	var words []string
	for _, g := range m {
		words = append(words, g.Words...)
	}
	return words
}

// Count returns the total number of matched words.
func (m Matches) Count() int {
	n := 0
	for _, g := range m {
		n += len(g.Words)
	}
	return n
}

// parseListing turns listing body lines into MetaData entries. Each line
// tokenizes to a name and its description; repeated names keep their
// first-seen description and position.
func parseListing(lines []string) []MetaData {
	var items []MetaData
	seen := make(map[string]bool)

	for _, line := range lines {
		words := protocol.Tokenize(line)
		if len(words) == 0 {
			continue
		}
		if seen[words[0]] {
			continue
		}
		seen[words[0]] = true

		item := MetaData{Name: words[0]}
		if len(words) > 1 {
			item.Description = words[1]
		}
		items = append(items, item)
	}
	return items
}

// parseMatches turns match body lines into grouped results. Each line
// tokenizes to a database name followed by matched words.
func parseMatches(lines []string) Matches {
	var matches Matches
	index := make(map[string]int)

	for _, line := range lines {
		words := protocol.Tokenize(line)
		if len(words) < 2 {
			continue
		}

		db := words[0]
		i, ok := index[db]
		if !ok {
			i = len(matches)
			index[db] = i
			matches = append(matches, MatchGroup{Database: db})
		}
		matches[i].Words = append(matches[i].Words, words[1:]...)
	}
	return matches
}
