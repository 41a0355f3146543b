package protocol

import "regexp"

// A word is a double-quoted span, a single-quoted span, or a maximal run of
// non-whitespace characters. Inside a quoted span a backslash escapes the
// following character; the backslash is kept in the token (the protocol text
// requires no further unescaping).
var wordPattern = regexp.MustCompile(`"((?:\\.|[^"\\])*)"|'((?:\\.|[^'\\])*)'|(\S+)`)

// Tokenize splits one line of response text into its ordered words.
// An empty line yields no words.
func Tokenize(line string) []string {
	matches := wordPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}

	words := make([]string, 0, len(matches))
	for _, m := range matches {
		// Groups: 1 = double-quoted, 2 = single-quoted, 3 = bare word.
		// Exactly one of them matched; quoted groups may be empty strings.
		for g := 1; g <= 3; g++ {
			if m[2*g] >= 0 {
				words = append(words, line[m[2*g]:m[2*g+1]])
				break
			}
		}
	}
	return words
}
