package protocol

import (
	"bytes"
	"testing"
)

func TestWriteRequest(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		args     []string
		expected string
	}{
		{"no arguments", CmdQuit, nil, "QUIT\r\n"},
		{"show databases", CmdShowDB, nil, "SHOW DB\r\n"},
		{"define", CmdDefine, []string{"*", `"ruby"`}, "DEFINE * \"ruby\"\r\n"},
		{"match", CmdMatch, []string{"foldoc", "prefix", `"rub"`}, "MATCH foldoc prefix \"rub\"\r\n"},
		{"client", CmdClient, []string{`"dict-cli 1.0"`}, "CLIENT \"dict-cli 1.0\"\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteRequest(&buf, tt.command, tt.args...); err != nil {
				t.Fatalf("WriteRequest() error = %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("WriteRequest() = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"word", `"word"`},
		{"two words", `"two words"`},
		{`has "quotes"`, `"has \"quotes\""`},
		{`back\slash`, `"back\\slash"`},
		{"", `""`},
	}

	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.expected {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.expected)
		}
	}
}
