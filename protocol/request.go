package protocol

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

// Buffer pool for building request lines
var bufferPool = sync.Pool{
	New: func() any {
		// Typical request is well under 128 bytes
		return bytes.NewBuffer(make([]byte, 0, 128))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// WriteRequest writes one CRLF-terminated request line to w.
// Arguments are space-joined as given; quoting argument text is the caller's
// responsibility (see Quote).
func WriteRequest(w io.Writer, command string, args ...string) error {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(command)
	for _, arg := range args {
		buf.WriteByte(' ')
		buf.WriteString(arg)
	}
	buf.WriteString(CRLF)

	_, err := w.Write(buf.Bytes())
	return err
}

// Quote wraps text in double quotes, backslash-escaping embedded quotes and
// backslashes, for arguments that may contain whitespace (words, client
// identification strings).
func Quote(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte('"')
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}
