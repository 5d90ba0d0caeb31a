package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// RenderCache keeps finished page bodies keyed by request path and language.
// Entries past the revalidate window read as misses and are rebuilt by the
// next request. It only ever holds rendered output; fetches never consult it.
type RenderCache struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time

	// mu orders Set against Invalidate so a render that started before an
	// invalidation can never store its body afterwards.
	mu          sync.Mutex
	generations map[string]uint64
}

type entry struct {
	body     []byte
	storedAt time.Time
}

func New(size int, revalidate time.Duration) (*RenderCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache: size must be positive, got %d", size)
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &RenderCache{
		entries:     entries,
		ttl:         revalidate,
		now:         time.Now,
		generations: make(map[string]uint64),
	}, nil
}

func entryKey(path, lang string) string {
	return path + "\x00" + lang
}

// Stamp returns the current generation of path. Take it before fetching the
// data a page is rendered from and hand it back to Set.
func (c *RenderCache) Stamp(path string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[path]
}

func (c *RenderCache) Get(path, lang string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	key := entryKey(path, lang)
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if c.now().Sub(e.storedAt) >= c.ttl {
		c.entries.Remove(key)
		return nil, false
	}
	return e.body, true
}

// Set stores body for path in lang unless path was invalidated after stamp
// was taken. It reports whether the body was stored.
func (c *RenderCache) Set(path, lang string, stamp uint64, body []byte) bool {
	if c.ttl <= 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[path] != stamp {
		return false
	}
	stored := make([]byte, len(body))
	copy(stored, body)
	c.entries.Add(entryKey(path, lang), entry{body: stored, storedAt: c.now()})
	return true
}

// Invalidate drops every language variant of the given paths and bumps their
// generation so renders already in flight are not stored.
func (c *RenderCache) Invalidate(paths ...string) {
	if len(paths) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	prefixes := make([]string, 0, len(paths))
	for _, path := range paths {
		c.generations[path]++
		prefixes = append(prefixes, entryKey(path, ""))
	}
	for _, k := range c.entries.Keys() {
		key, ok := k.(string)
		if !ok {
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				c.entries.Remove(key)
				break
			}
		}
	}
}

func (c *RenderCache) Len() int {
	return c.entries.Len()
}

func MemberKey(memberID string) string {
	return "/members/" + memberID
}

func SessionKey(memberID, sessionID string) string {
	return "/members/" + memberID + "/sessions/" + sessionID
}
