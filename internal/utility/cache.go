package utility

import (
	"sync"
	"time"
)

type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là cache in-memory có thời gian sống cho từng item và goroutine dọn dẹp định kỳ.
type Cache struct {
	items    map[string]cacheItem
	mu       sync.RWMutex
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewCache tạo một instance mới của Cache. ttl là thời gian sống mặc định của Set.
func NewCache(ttl, cleanup time.Duration) *Cache {
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	cache := &Cache{
		items:    make(map[string]cacheItem),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với TTL mặc định
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL lưu giá trị với TTL riêng. ttl <= 0 thì item không bao giờ hết hạn.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	item := cacheItem{value: value}
	if ttl > 0 {
		item.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item
}

// Get lấy giá trị từ cache. Item đã hết hạn coi như không có.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, exists := c.items[key]
	if !exists || c.expired(item, c.now()) {
		return nil, false
	}
	return item.value, true
}

// Len trả về số item còn trong map, kể cả item đã hết hạn chưa được dọn.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop dừng goroutine dọn dẹp.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}

func (c *Cache) expired(item cacheItem, now time.Time) bool {
	return !item.expiresAt.IsZero() && !now.Before(item.expiresAt)
}

func (c *Cache) purgeExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, item := range c.items {
		if c.expired(item, now) {
			delete(c.items, k)
		}
	}
}

// cleanupLoop dọn dẹp item hết hạn định kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.purgeExpired()
		case <-c.stopChan:
			return
		}
	}
}
