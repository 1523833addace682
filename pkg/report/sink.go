// Package report writes human readable search summaries to a ResultSink.
package report

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ResultSink receives report lines. Every Write is one line without its trailing newline.
type ResultSink interface {
	Write(line string) error
}

// WriterSink writes lines to any io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (ws *WriterSink) Write(line string) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	_, err := io.WriteString(ws.w, line+"\n")
	return err
}

// FileSink appends lines to a file. Close flushes and closes it.
type FileSink struct {
	mu sync.Mutex
	f  *os.File
	bw *bufio.Writer
}

// NewFileSink opens filename for appending, truncating it first when truncate is set.
func NewFileSink(filename string, truncate bool) (*FileSink, error) {
	flag := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flag |= os.O_TRUNC
	}
	f, err := os.OpenFile(filename, flag, 0644)
	if err != nil {
		return nil, err
	}
	return &FileSink{f: f, bw: bufio.NewWriter(f)}, nil
}

func (fs *FileSink) Write(line string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, err := fs.bw.WriteString(line); err != nil {
		return err
	}
	return fs.bw.WriteByte('\n')
}

func (fs *FileSink) Flush() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.bw.Flush()
}

func (fs *FileSink) Close() error {
	if err := fs.Flush(); err != nil {
		fs.f.Close()
		return err
	}
	return fs.f.Close()
}

// LogSink logs every non-blank line at Info level.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (ls *LogSink) Write(line string) error {
	for _, l := range strings.Split(line, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		ls.log.Info(l)
	}
	return nil
}

// MultiSink writes every line to all of its sinks and stops at the first error.
type MultiSink []ResultSink

func (ms MultiSink) Write(line string) error {
	for _, s := range ms {
		if err := s.Write(line); err != nil {
			return err
		}
	}
	return nil
}
