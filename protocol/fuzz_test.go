package protocol

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func FuzzTokenize(f *testing.F) {
	f.Add(`foldoc "Free On-line Dictionary of Computing"`)
	f.Add(`'single' "double" bare`)
	f.Add(`"esc \" aped"`)
	f.Add("")
	f.Add("   ")
	f.Add(`"unterminated`)

	f.Fuzz(func(t *testing.T, line string) {
		words := Tokenize(line)
		// Words are spans of the input: escapes are preserved, nothing is
		// rewritten.
		for _, w := range words {
			if !strings.Contains(line, w) {
				t.Errorf("Tokenize(%q) produced word %q not present in input", line, w)
			}
		}
	})
}

func FuzzReadStatus(f *testing.F) {
	f.Add("250 ok")
	f.Add("552 no match")
	f.Add("garbage")
	f.Add("")
	f.Add("999")

	f.Fuzz(func(t *testing.T, input string) {
		line := strings.SplitN(input, "\n", 2)[0]
		resp, err := ReadStatus(bufio.NewReader(strings.NewReader(line + "\r\n")))
		if err != nil {
			var perr *Error
			if !errors.As(err, &perr) {
				t.Errorf("ReadStatus(%q) unexpected error type: %v", line, err)
			}
			return
		}
		if resp.Code >= 400 && resp.Code < 600 {
			t.Errorf("ReadStatus(%q) returned error code %d without error", line, resp.Code)
		}
	})
}
