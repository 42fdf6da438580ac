package completion

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// writeMark is the membership last written for one item. gen is the cache
// generation at which the mark was recorded.
type writeMark struct {
	completed bool
	pending   bool
	gen       uint64
}

// session is one user's cache entry. Entries are replaced, never mutated.
type session struct {
	set    Set
	writes map[string]writeMark
}

func (s *session) withMark(itemID string, mark writeMark) *session {
	writes := make(map[string]writeMark, len(s.writes)+1)
	for id, m := range s.writes {
		writes[id] = m
	}
	writes[itemID] = mark
	return &session{set: s.set.With(itemID, mark.completed), writes: writes}
}

// sessionCache holds the completion set of every signed-in user. Entries
// expire after ttl; the least recently used session is evicted at capacity.
//
// Every write bumps gen. A fetch records gen before reading the store, and
// put re-applies any item written after that point or still in flight, so a
// store read that raced a write cannot wipe the write from the cache.
type sessionCache struct {
	mu  sync.Mutex
	gen uint64
	lru *expirable.LRU[string, *session]
}

func newSessionCache(size int, ttl time.Duration, onEvict func(userID string)) *sessionCache {
	var evict expirable.EvictCallback[string, *session]
	if onEvict != nil {
		evict = func(userID string, _ *session) { onEvict(userID) }
	}
	return &sessionCache{
		lru: expirable.NewLRU[string, *session](size, evict, ttl),
	}
}

func (c *sessionCache) get(userID string) (Set, bool) {
	entry, ok := c.lru.Get(userID)
	if !ok {
		return Set{}, false
	}
	return entry.set, true
}

// generation returns the current write generation. Pass it to put once the
// store read it guards has returned.
func (c *sessionCache) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// put installs a set read from the store at generation since and returns the
// set actually cached
func (c *sessionCache) put(userID string, set Set, since uint64) Set {
	c.mu.Lock()
	defer c.mu.Unlock()

	writes := map[string]writeMark{}
	if cur, ok := c.lru.Peek(userID); ok {
		for id, m := range cur.writes {
			if !m.pending && m.gen <= since {
				// already visible to the read
				continue
			}
			set = set.With(id, m.completed)
			writes[id] = m
		}
	}
	c.lru.Add(userID, &session{set: set, writes: writes})
	return set
}

func (c *sessionCache) remove(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(userID)
}

func (c *sessionCache) len() int {
	return c.lru.Len()
}

// apply installs the set with itemID's membership changed and returns the
// previous set
func (c *sessionCache) apply(userID, itemID string, completed bool) Set {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.lru.Peek(userID)
	if !ok {
		cur = &session{set: NewSet(nil)}
	}
	c.gen++
	c.lru.Add(userID, cur.withMark(itemID, writeMark{completed: completed, pending: true, gen: c.gen}))
	return cur.set
}

// commit marks the in-flight write of itemID as persisted
func (c *sessionCache) commit(userID, itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.lru.Peek(userID)
	if !ok {
		return
	}
	m, ok := cur.writes[itemID]
	if !ok {
		return
	}
	c.gen++
	m.pending = false
	m.gen = c.gen
	c.lru.Add(userID, cur.withMark(itemID, m))
}

// restore undoes apply for itemID only. Changes other writers made to the
// session meanwhile are kept.
func (c *sessionCache) restore(userID, itemID string, completed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.lru.Peek(userID)
	if !ok {
		// session ended while the write was in flight
		return
	}
	c.gen++
	c.lru.Add(userID, cur.withMark(itemID, writeMark{completed: completed, gen: c.gen}))
}
