package cache

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// storageItem represents an item in the memory storage
type storageItem struct {
	value      []byte
	expiration time.Time // zero means no expiry
}

func (i *storageItem) expired(now time.Time) bool {
	return !i.expiration.IsZero() && now.After(i.expiration)
}

// MemoryStorage is an in-process fiber.Storage used as the default limiter store.
type MemoryStorage struct {
	items       map[string]*storageItem
	mutex       sync.RWMutex
	now         func() time.Time
	cleanupDone chan struct{}
	closeOnce   sync.Once
}

var _ fiber.Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates a memory storage that drops expired entries every cleanupInterval.
func NewMemoryStorage(cleanupInterval time.Duration) *MemoryStorage {
	s := &MemoryStorage{
		items:       make(map[string]*storageItem),
		now:         time.Now,
		cleanupDone: make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.startCleanup(cleanupInterval)
	}
	return s
}

// Get returns nil, nil for missing or expired keys, as fiber.Storage requires.
func (s *MemoryStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	s.mutex.RLock()
	item, ok := s.items[key]
	s.mutex.RUnlock()
	if !ok || item.expired(s.now()) {
		return nil, nil
	}
	result := make([]byte, len(item.value))
	copy(result, item.value)
	return result, nil
}

// Set stores a copy of val. A zero exp keeps the entry until deleted.
func (s *MemoryStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	valueCopy := make([]byte, len(val))
	copy(valueCopy, val)

	item := &storageItem{value: valueCopy}
	if exp > 0 {
		item.expiration = s.now().Add(exp)
	}

	s.mutex.Lock()
	s.items[key] = item
	s.mutex.Unlock()
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mutex.Lock()
	delete(s.items, key)
	s.mutex.Unlock()
	return nil
}

func (s *MemoryStorage) Reset() error {
	s.mutex.Lock()
	s.items = make(map[string]*storageItem)
	s.mutex.Unlock()
	return nil
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (s *MemoryStorage) Close() error {
	s.closeOnce.Do(func() { close(s.cleanupDone) })
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStorage) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.items)
}

func (s *MemoryStorage) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanupExpired()
		case <-s.cleanupDone:
			return
		}
	}
}

func (s *MemoryStorage) cleanupExpired() {
	now := s.now()
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for key, item := range s.items {
		if item.expired(now) {
			delete(s.items, key)
		}
	}
}
