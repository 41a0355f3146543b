package protocol

import (
	"bufio"
	"strings"
)

// ReadBody reads a dot-terminated multi-line block. The terminator line is
// not part of the body; any other line starting with "." has exactly one
// leading dot stripped (undoing byte-stuffing). The trailing acknowledgment
// status line is left unread for the caller.
func ReadBody(reader *bufio.Reader) ([]string, error) {
	var lines []string
	for {
		line, err := ReadLine(reader)
		if err != nil {
			return nil, err
		}
		if line == BodyTerminator {
			return lines, nil
		}
		if strings.HasPrefix(line, ".") {
			line = line[1:]
		}
		lines = append(lines, line)
	}
}

// ReadBodyChecked reads a dot-terminated block like ReadBody, then consumes
// the server's final acknowledgment line, which must carry the given code.
func ReadBodyChecked(reader *bufio.Reader, ackCode int) ([]string, error) {
	lines, err := ReadBody(reader)
	if err != nil {
		return nil, err
	}
	if err := ReadChecked(reader, ackCode); err != nil {
		return nil, err
	}
	return lines, nil
}
