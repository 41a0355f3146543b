package protocol

import (
	"errors"
	"io"
	"testing"
)

func TestReadBody(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "plain body",
			input:    []string{"first line\r\n", "second line\r\n", ".\r\n"},
			expected: []string{"first line", "second line"},
		},
		{
			name:     "empty body",
			input:    []string{".\r\n"},
			expected: nil,
		},
		{
			name:     "dot stuffed line",
			input:    []string{"..leading-dot-stuffed\r\n", ".\r\n"},
			expected: []string{".leading-dot-stuffed"},
		},
		{
			name:     "single stuffed dot",
			input:    []string{"..\r\n", ".\r\n"},
			expected: []string{"."},
		},
		{
			name:     "blank lines kept",
			input:    []string{"a\r\n", "\r\n", "b\r\n", ".\r\n"},
			expected: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := ReadBody(reader(tt.input...))
			if err != nil {
				t.Fatalf("ReadBody() error = %v", err)
			}
			if len(lines) != len(tt.expected) {
				t.Fatalf("ReadBody() = %q, want %q", lines, tt.expected)
			}
			for i := range lines {
				if lines[i] != tt.expected[i] {
					t.Errorf("ReadBody()[%d] = %q, want %q", i, lines[i], tt.expected[i])
				}
			}
		})
	}
}

func TestReadBodyChecked(t *testing.T) {
	lines, err := ReadBodyChecked(reader("line\r\n", ".\r\n", "250 ok\r\n"), 250)
	if err != nil {
		t.Fatalf("ReadBodyChecked() error = %v", err)
	}
	if len(lines) != 1 || lines[0] != "line" {
		t.Errorf("ReadBodyChecked() = %q, want [line]", lines)
	}

	_, err = ReadBodyChecked(reader("line\r\n", ".\r\n", "551 nope\r\n"), 250)
	if !errors.Is(err, ErrMalformedReply) {
		t.Errorf("unexpected ack error = %v, want malformed reply", err)
	}
}

func TestReadBodyUnterminated(t *testing.T) {
	_, err := ReadBody(reader("line\r\n"))
	if !errors.Is(err, io.EOF) {
		t.Errorf("unterminated body error = %v, want io.EOF", err)
	}
}
