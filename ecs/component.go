package ecs

// ComponentArray is a fixed-capacity component column indexed by entity slot
type ComponentArray[T any] struct {
	data [MaxEntities]T
}

// at returns a pointer to the slot's value; the caller checks liveness
func (c *ComponentArray[T]) at(idx int) *T {
	return &c.data[idx]
}

// reset overwrites the slot with the zero value
func (c *ComponentArray[T]) reset(idx int) {
	var zero T
	c.data[idx] = zero
}
