// Package logx is the line-oriented diagnostic channel.
//
// It avoids fmt so that it stays small on MCU builds; integers are rendered
// with conv.AppendUint into a reused buffer.
package logx

import (
	"io"
	"sync"

	"rgbcal/x/conv"
)

// Logger writes newline-terminated lines to w. Safe for concurrent use;
// a line is always written with a single Write call.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

func New(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, buf: make([]byte, 0, 64)}
}

// Line writes s followed by a newline.
func (l *Logger) Line(s string) {
	l.mu.Lock()
	l.buf = append(l.buf[:0], s...)
	l.flush()
	l.mu.Unlock()
}

// Uint writes prefix, n and suffix as one line.
func (l *Logger) Uint(prefix string, n uint64, suffix string) {
	l.mu.Lock()
	l.buf = append(l.buf[:0], prefix...)
	l.buf = conv.AppendUint(l.buf, n)
	l.buf = append(l.buf, suffix...)
	l.flush()
	l.mu.Unlock()
}

// Block writes a group of lines without interleaving from other writers.
func (l *Logger) Block(lines ...string) {
	l.mu.Lock()
	l.buf = l.buf[:0]
	for _, s := range lines {
		l.buf = append(l.buf, s...)
		l.buf = append(l.buf, '\n')
	}
	_, _ = l.w.Write(l.buf)
	l.mu.Unlock()
}

func (l *Logger) flush() {
	l.buf = append(l.buf, '\n')
	_, _ = l.w.Write(l.buf)
}
