package ecs

import "iter"

const columnBlockSize = 64

// column stores components of type T in fixed-size blocks. Deleted slots are
// recycled, so indices handed out by Append stay valid until deleted.
type column[T any] struct {
	blocks [][columnBlockSize]T
	filled [][columnBlockSize]bool
	free   []int
	next   int
	live   int
}

func (c *column[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/columnBlockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, [columnBlockSize]T{})
			c.filled = append(c.filled, [columnBlockSize]bool{})
		}
	}

	block, slot := index/columnBlockSize, index%columnBlockSize
	c.blocks[block][slot] = value
	c.filled[block][slot] = true
	c.live++
	return index
}

// Get returns a *T for a filled slot, nil otherwise.
func (c *column[T]) Get(index int) any {
	if !c.Has(index) {
		return nil
	}
	return &c.blocks[index/columnBlockSize][index%columnBlockSize]
}

func (c *column[T]) Delete(index int) {
	if !c.Has(index) {
		return
	}
	block, slot := index/columnBlockSize, index%columnBlockSize
	var zero T
	c.blocks[block][slot] = zero
	c.filled[block][slot] = false
	c.free = append(c.free, index)
	c.live--
}

func (c *column[T]) Has(index int) bool {
	if index < 0 || index >= c.next {
		return false
	}
	return c.filled[index/columnBlockSize][index%columnBlockSize]
}

// Len is the number of filled slots.
func (c *column[T]) Len() int {
	return c.live
}

// Iter yields filled slot indices in ascending order.
func (c *column[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.next; i++ {
			if c.filled[i/columnBlockSize][i%columnBlockSize] && !yield(i) {
				return
			}
		}
	}
}
