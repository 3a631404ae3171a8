package ecs

// System is one stage of the per-tick simulation
type System interface {
	// Update is called once per tick with the elapsed time in seconds
	Update(dt float64)
}
