package ecs

// MaxEntities is the fixed capacity of the entity pool
const MaxEntities = 256

// Entity is an opaque handle into the EntityStore.
// The low 16 bits are the slot index, the high 16 bits the slot generation.
// A slot's generation changes on release so recycled handles stop resolving.
type Entity uint32

func newEntity(index, generation uint16) Entity {
	return Entity(uint32(generation)<<16 | uint32(index))
}

// Index returns the slot index
func (e Entity) Index() int { return int(uint16(e)) }

// Generation returns the slot generation the handle was issued with
func (e Entity) Generation() uint16 { return uint16(e >> 16) }

// entityPool hands out slot indices in FIFO order
type entityPool struct {
	generations [MaxEntities]uint16
	alive       [MaxEntities]bool
	free        [MaxEntities]uint16 // ring buffer of free indices
	head        int
	count       int
}

func newEntityPool() *entityPool {
	p := &entityPool{count: MaxEntities}
	for i := range p.free {
		p.free[i] = uint16(i)
	}
	return p
}

func (p *entityPool) acquire() (Entity, bool) {
	if p.count == 0 {
		return 0, false
	}
	idx := p.free[p.head]
	p.head = (p.head + 1) % MaxEntities
	p.count--
	p.alive[idx] = true
	return newEntity(idx, p.generations[idx]), true
}

func (p *entityPool) release(e Entity) bool {
	if !p.isAlive(e) {
		return false
	}
	idx := e.Index()
	p.alive[idx] = false
	p.generations[idx]++
	p.free[(p.head+p.count)%MaxEntities] = uint16(idx)
	p.count++
	return true
}

func (p *entityPool) isAlive(e Entity) bool {
	idx := e.Index()
	if idx >= MaxEntities {
		return false
	}
	return p.alive[idx] && p.generations[idx] == e.Generation()
}
