// SPDX-License-Identifier: Unlicense OR MIT

package layout

// measureCache remembers Measurable results during a single
// Engine.Measure. Entries are evicted least recently used first.
type measureCache struct {
	m          map[measureKey]*measureElem
	head, tail *measureElem
}

type measureElem struct {
	next, prev *measureElem
	key        measureKey
	size       Size
}

type measureKey struct {
	node          *Node
	width, height MeasureSpec
}

const maxCacheSize = 1000

func (c *measureCache) Get(k measureKey) (Size, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.size, true
	}
	return Size{}, false
}

func (c *measureCache) Put(k measureKey, sz Size) {
	if c.m == nil {
		c.m = make(map[measureKey]*measureElem)
		c.head = new(measureElem)
		c.tail = new(measureElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if e, ok := c.m[k]; ok {
		e.size = sz
		c.remove(e)
		c.insert(e)
		return
	}
	e := &measureElem{key: k, size: sz}
	c.m[k] = e
	c.insert(e)
	if len(c.m) > maxCacheSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

// Reset drops every entry.
func (c *measureCache) Reset() {
	if c.m == nil {
		return
	}
	for k := range c.m {
		delete(c.m, k)
	}
	c.head.prev = c.tail
	c.tail.next = c.head
}

func (c *measureCache) Len() int {
	return len(c.m)
}

func (c *measureCache) remove(e *measureElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *measureCache) insert(e *measureElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
