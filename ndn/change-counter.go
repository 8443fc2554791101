/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

// Changeable is implemented by objects that count their mutations, including
// mutations of any held child objects.
type Changeable interface {
	ChangeCount() uint64
}

// ChangeCounter wraps a child object and remembers the child's change count
// from the last time the parent looked. Parents poll their children on every
// ChangeCount query, so change propagation needs no back-references from child
// to parent and cannot form cycles.
type ChangeCounter[T Changeable] struct {
	target       T
	checkedCount uint64
}

// NewChangeCounter creates a ChangeCounter tracking the specified target.
func NewChangeCounter[T Changeable](target T) ChangeCounter[T] {
	return ChangeCounter[T]{target: target, checkedCount: target.ChangeCount()}
}

// Get returns the tracked target.
func (c *ChangeCounter[T]) Get() T {
	return c.target
}

// Set replaces the tracked target. The parent is expected to bump its own
// change count alongside this call.
func (c *ChangeCounter[T]) Set(target T) {
	c.target = target
	c.checkedCount = target.ChangeCount()
}

// CheckChanged returns whether the target's change count moved since the last
// check, and remembers the current count.
func (c *ChangeCounter[T]) CheckChanged() bool {
	count := c.target.ChangeCount()
	changed := count != c.checkedCount
	c.checkedCount = count
	return changed
}
