package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để không block request handling.
// Entry được đưa vào buffer và một goroutine ghi ra mọi writer.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	allow   func(*logrus.Entry) bool
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters tạo một async hook mới với nhiều writers.
// bufferSize <= 0 uses 1000 entries.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int, allow func(*logrus.Entry) bool) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	if allow == nil {
		allow = func(*logrus.Entry) bool { return true }
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
		allow:   allow,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire never blocks: when the buffer is full the entry is dropped.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	if !h.allow(entry) {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		// hook đã đóng, ghi trực tiếp
		data, err := format(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- snapshot(entry):
	default:
	}
	return nil
}

// snapshot detaches the entry from logrus' pooled buffer before it crosses goroutines.
func snapshot(entry *logrus.Entry) *logrus.Entry {
	cp := *entry
	cp.Buffer = nil
	cp.Data = make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		cp.Data[k] = v
	}
	return &cp
}

func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		data, err := format(entry)
		if err != nil {
			continue
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
	}
}

func format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng hook và đợi tất cả entries được xử lý xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
