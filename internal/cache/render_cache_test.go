package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, size int, ttl time.Duration) (*RenderCache, *time.Time) {
	t.Helper()
	c, err := New(size, ttl)
	require.NoError(t, err)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestGetSetAndRevalidate(t *testing.T) {
	c, now := newTestCache(t, 4, time.Minute)

	require.True(t, c.Set("/members/m1", "ko", c.Stamp("/members/m1"), []byte("<html>")))
	body, ok := c.Get("/members/m1", "ko")
	require.True(t, ok)
	assert.Equal(t, "<html>", string(body))

	*now = now.Add(59 * time.Second)
	_, ok = c.Get("/members/m1", "ko")
	assert.True(t, ok)

	*now = now.Add(time.Second)
	_, ok = c.Get("/members/m1", "ko")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSetCopiesBody(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)
	body := []byte("abc")
	c.Set("k", "ko", c.Stamp("k"), body)
	body[0] = 'x'

	got, _ := c.Get("k", "ko")
	assert.Equal(t, "abc", string(got))
}

func TestLanguagesAreCachedSeparately(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)
	path := MemberKey("m1")

	c.Set(path, "en", c.Stamp(path), []byte("english"))

	_, ok := c.Get(path, "ko")
	assert.False(t, ok)

	c.Set(path, "ko", c.Stamp(path), []byte("korean"))
	en, _ := c.Get(path, "en")
	ko, _ := c.Get(path, "ko")
	assert.Equal(t, "english", string(en))
	assert.Equal(t, "korean", string(ko))
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(t, 8, time.Minute)
	for _, lang := range []string{"ko", "en"} {
		c.Set(MemberKey("m1"), lang, 0, []byte("a"))
		c.Set(SessionKey("m1", "s1"), lang, 0, []byte("b"))
		c.Set(MemberKey("m2"), lang, 0, []byte("c"))
	}

	c.Invalidate(SessionKey("m1", "s1"), MemberKey("m1"), "/never-stored")

	for _, lang := range []string{"ko", "en"} {
		_, ok := c.Get("/members/m1", lang)
		assert.False(t, ok, lang)
		_, ok = c.Get("/members/m1/sessions/s1", lang)
		assert.False(t, ok, lang)
		_, ok = c.Get("/members/m2", lang)
		assert.True(t, ok, lang)
	}
}

func TestInvalidateKeepsPathsSharingAPrefix(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)
	c.Set(MemberKey("m1"), "ko", 0, []byte("a"))
	c.Set(MemberKey("m10"), "ko", 0, []byte("b"))

	c.Invalidate(MemberKey("m1"))

	_, ok := c.Get(MemberKey("m10"), "ko")
	assert.True(t, ok)
}

func TestSetAfterInvalidateIsDropped(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)
	path := SessionKey("m1", "s1")

	stamp := c.Stamp(path)
	c.Invalidate(path)

	assert.False(t, c.Set(path, "ko", stamp, []byte("stale")))
	_, ok := c.Get(path, "ko")
	assert.False(t, ok)

	assert.True(t, c.Set(path, "ko", c.Stamp(path), []byte("fresh")))
	got, ok := c.Get(path, "ko")
	require.True(t, ok)
	assert.Equal(t, "fresh", string(got))
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(t, 2, time.Minute)
	c.Set("a", "ko", 0, []byte("a"))
	c.Set("b", "ko", 0, []byte("b"))
	c.Get("a", "ko")
	c.Set("c", "ko", 0, []byte("c"))

	_, ok := c.Get("b", "ko")
	assert.False(t, ok)
	_, ok = c.Get("a", "ko")
	assert.True(t, ok)
}

func TestDisabledWithoutWindow(t *testing.T) {
	c, _ := newTestCache(t, 2, 0)
	assert.False(t, c.Set("a", "ko", 0, []byte("a")))
	_, ok := c.Get("a", "ko")
	assert.False(t, ok)
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(0, time.Minute)
	assert.Error(t, err)
}
