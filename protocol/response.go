package protocol

import (
	"bufio"
	"strings"
)

// Response is a transient parsed status line: the 3-digit code, the
// free-text remainder, and the raw line for error reporting.
type Response struct {
	Code int
	Text string
	Raw  string
}

// ReadLine reads one line from the reader with its terminator stripped.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// statusCode extracts the leading 3-digit code of a status line.
// The code must be followed by a space or the end of the line.
func statusCode(line string) (int, bool) {
	if len(line) < 3 {
		return 0, false
	}
	code := 0
	for i := 0; i < 3; i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		code = code*10 + int(c-'0')
	}
	if len(line) > 3 && line[3] != ' ' {
		return 0, false
	}
	return code, true
}

// ReadChecked reads one status line and validates it against an expected
// acknowledgment code. The line is not tokenized; trailing text is ignored.
// A line with no recognizable code fails with KindUnparsableReply, a
// different code fails with KindMalformedReply carrying the full line.
func ReadChecked(reader *bufio.Reader, expected int) error {
	line, err := ReadLine(reader)
	if err != nil {
		return err
	}
	code, ok := statusCode(line)
	if !ok {
		return &Error{Kind: KindUnparsableReply, Line: line}
	}
	if code != expected {
		return &Error{Kind: KindMalformedReply, Line: line}
	}
	return nil
}

// ReadStatus reads one status line of the shape "NNN text". Error codes
// (first digit 4 or 5) are classified and returned as an *Error; any other
// code is returned with its trailing text.
func ReadStatus(reader *bufio.Reader) (*Response, error) {
	line, err := ReadLine(reader)
	if err != nil {
		return nil, err
	}
	code, ok := statusCode(line)
	if !ok || len(line) < 4 {
		return nil, &Error{Kind: KindUnparsableReply, Line: line}
	}
	if code >= 400 && code < 600 {
		return nil, Classify(code, line)
	}
	return &Response{Code: code, Text: line[4:], Raw: line}, nil
}
