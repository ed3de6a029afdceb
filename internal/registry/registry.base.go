// Package registry cung cấp registry generic, thread-safe cho các singleton của ứng dụng
// (collections, databases, clients).
package registry

import (
	"fmt"
	"sort"
	"sync"

	"sentiment_dashboard/core/common"
)

// Registry là một thread-safe generic registry.
//
// Example:
//
//	cols := NewRegistry[*mongo.Collection]()
//	cols.Register("sentimental_analysis", db.Collection("sentimental_analysis"))
//	if col, ok := cols.Get("sentimental_analysis"); ok {
//	    ...
//	}
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo và trả về một registry mới.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item. Item cùng tên đã có sẽ bị ghi đè và isNew = false.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// MustGet is Get that reports a missing item as a not-found error.
func (r *Registry[T]) MustGet(name string) (T, error) {
	item, ok := r.Get(name)
	if !ok {
		return item, fmt.Errorf("%s is not registered: %w", name, common.ErrNotFound)
	}
	return item, nil
}

// Names trả về tên các item đã đăng ký, đã sắp xếp.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
