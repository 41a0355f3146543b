package protocol

import (
	"errors"
	"testing"
)

func TestParseGreeting(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		text         string
		capabilities []string
		messageID    string
	}{
		{
			name:         "banner with capabilities",
			line:         "220 dictd.example.org <auth.mime> <abc123.xyz@dictd.example.org>",
			text:         "dictd.example.org",
			capabilities: []string{"auth.mime"},
			messageID:    "<abc123.xyz@dictd.example.org>",
		},
		{
			name:         "banner without capabilities",
			line:         "220 dict.org dictd 1.12 <17.1@dict.org>",
			text:         "dict.org dictd 1.12",
			capabilities: nil,
			messageID:    "<17.1@dict.org>",
		},
		{
			name:         "empty capability list",
			line:         "220 srv <> <1@srv>",
			text:         "srv",
			capabilities: nil,
			messageID:    "<1@srv>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGreeting(tt.line)
			if err != nil {
				t.Fatalf("ParseGreeting(%q) error = %v", tt.line, err)
			}
			if g.Text != tt.text {
				t.Errorf("Text = %q, want %q", g.Text, tt.text)
			}
			if len(g.Capabilities) != len(tt.capabilities) {
				t.Fatalf("Capabilities = %q, want %q", g.Capabilities, tt.capabilities)
			}
			for i := range g.Capabilities {
				if g.Capabilities[i] != tt.capabilities[i] {
					t.Errorf("Capabilities[%d] = %q, want %q", i, g.Capabilities[i], tt.capabilities[i])
				}
			}
			if g.MessageID != tt.messageID {
				t.Errorf("MessageID = %q, want %q", g.MessageID, tt.messageID)
			}
		})
	}
}

func TestParseGreetingMalformed(t *testing.T) {
	lines := []string{
		"250 ok",
		"220 no message id here",
		"220 <caps-but-no-msgid>",
		"hello",
	}
	for _, line := range lines {
		_, err := ParseGreeting(line)
		if !errors.Is(err, ErrMalformedReply) {
			t.Errorf("ParseGreeting(%q) error = %v, want malformed reply", line, err)
		}
	}
}

func TestGreetingHas(t *testing.T) {
	g := &Greeting{Capabilities: []string{"auth.mime", "xversion"}}

	if !g.Has("auth.mime") {
		t.Error("Has(auth.mime) should be true")
	}
	if !g.Has("mime") {
		t.Error("Has(mime) should honor dot-joined tokens")
	}
	if !g.Has("xversion") {
		t.Error("Has(xversion) should be true")
	}
	if g.Has("sasl") {
		t.Error("Has(sasl) should be false")
	}
}
