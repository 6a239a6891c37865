// Package catalog generates the fixed item collection shown by the list view.
package catalog

import "strconv"

// DefaultSize is the length of the default collection.
const DefaultSize = 25

// itemPrefix is the label prefix of every generated item.
const itemPrefix = "Item "

// Collection is an ordered, immutable sequence of display labels.
type Collection []string

// Generate returns the labels "Item 1" through "Item n".
// Non-positive n yields an empty collection.
func Generate(n int) Collection {
	if n <= 0 {
		return Collection{}
	}
	c := make(Collection, n)
	for i := range c {
		c[i] = itemPrefix + strconv.Itoa(i+1)
	}
	return c
}

// Default returns the default collection of DefaultSize items.
func Default() Collection {
	return Generate(DefaultSize)
}

// Len returns the number of items in the collection.
func (c Collection) Len() int {
	return len(c)
}
