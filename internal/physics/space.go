package physics

import "math"

// Arbiter is the opaque collision context handed to handlers. It identifies
// the two shapes involved in the contact in registration order.
type Arbiter struct {
	A, B *Shape
}

// Handler is invoked once when two shapes begin touching. The return value
// decides whether the engine treats the contact as physically solid (true)
// or lets the shapes pass through each other (false).
type Handler func(a, b *Shape, arb *Arbiter) bool

type pairKey struct {
	lo, hi int // shape ids, lo < hi
}

type catKey struct {
	a, b Category
}

// Space owns every body and shape in the simulation and advances them.
type Space struct {
	gravity Vec
	damping float64 // per-second velocity retention factor

	shapes   []*Shape
	nextID   int
	handlers map[catKey]Handler

	// touching records pairs currently in contact and whether the contact
	// was ruled solid when it began.
	touching map[pairKey]bool

	stepping bool
	removed  []*Shape
}

// NewSpace creates an empty space with the given gravity and damping.
// Damping is the fraction of velocity retained per second (1 = none).
func NewSpace(gravity Vec, damping float64) *Space {
	return &Space{
		gravity:  gravity,
		damping:  damping,
		handlers: make(map[catKey]Handler),
		touching: make(map[pairKey]bool),
	}
}

// AddShape registers a shape (and its body) with the space.
func (sp *Space) AddShape(s *Shape) {
	sp.nextID++
	s.id = sp.nextID
	sp.shapes = append(sp.shapes, s)
}

// RemoveShape unregisters a shape. Safe to call from inside a collision
// handler: the removal is deferred until the current step completes.
func (sp *Space) RemoveShape(s *Shape) {
	if sp.stepping {
		sp.removed = append(sp.removed, s)
		return
	}
	sp.removeNow(s)
}

func (sp *Space) removeNow(s *Shape) {
	for i, sh := range sp.shapes {
		if sh == s {
			sp.shapes = append(sp.shapes[:i], sp.shapes[i+1:]...)
			break
		}
	}
	for k := range sp.touching {
		if k.lo == s.id || k.hi == s.id {
			delete(sp.touching, k)
		}
	}
}

// OnCollision registers a begin handler for the unordered category pair
// (a, b). The handler receives the shapes ordered so that the first argument
// carries category a.
func (sp *Space) OnCollision(a, b Category, h Handler) {
	sp.handlers[catKey{a, b}] = h
	if a != b {
		// Store the swapped orientation too so lookup is order-free.
		sp.handlers[catKey{b, a}] = func(x, y *Shape, arb *Arbiter) bool {
			return h(y, x, arb)
		}
	}
}

// Step advances the simulation by dt seconds: integrate dynamic bodies,
// detect new contacts, dispatch begin handlers, and resolve solid contacts.
func (sp *Space) Step(dt float64) {
	sp.stepping = true

	retain := math.Pow(sp.damping, dt)
	for _, s := range sp.shapes {
		b := s.body
		if b.kind != Dynamic {
			continue
		}
		b.velocity = b.velocity.Scale(retain).Add(sp.gravity.Scale(dt))
		b.position = b.position.Add(b.velocity.Scale(dt))
	}

	seen := make(map[pairKey]bool)
	for i := 0; i < len(sp.shapes); i++ {
		for j := i + 1; j < len(sp.shapes); j++ {
			a, b := sp.shapes[i], sp.shapes[j]
			if a.body.kind == Static && b.body.kind == Static {
				continue
			}
			if !a.overlaps(b) {
				continue
			}
			key := pairKey{a.id, b.id}
			if key.lo > key.hi {
				key.lo, key.hi = key.hi, key.lo
			}
			seen[key] = true

			solid, ongoing := sp.touching[key]
			if !ongoing {
				solid = true
				if h, ok := sp.handlers[catKey{a.category, b.category}]; ok {
					solid = h(a, b, &Arbiter{A: a, B: b})
				}
				sp.touching[key] = solid
			}
			if solid {
				resolve(a, b)
			}
		}
	}

	// Contacts that ended this step become eligible to begin again.
	for k := range sp.touching {
		if !seen[k] {
			delete(sp.touching, k)
		}
	}

	sp.stepping = false
	for _, s := range sp.removed {
		sp.removeNow(s)
	}
	sp.removed = sp.removed[:0]
}

// resolve separates two overlapping shapes along the axis of least
// penetration and kills the approach velocity on that axis.
func resolve(a, b *Shape) {
	al, at, ar, ab := a.BB()
	bl, bt, br, bb := b.BB()

	overlapX := math.Min(ar, br) - math.Max(al, bl)
	overlapY := math.Min(ab, bb) - math.Max(at, bt)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	// Push along the shallower axis.
	var push Vec
	if overlapX < overlapY {
		if a.body.position.X < b.body.position.X {
			push = Vec{-overlapX, 0}
		} else {
			push = Vec{overlapX, 0}
		}
	} else {
		if a.body.position.Y < b.body.position.Y {
			push = Vec{0, -overlapY}
		} else {
			push = Vec{0, overlapY}
		}
	}

	applyPush(a, b, push)
}

func applyPush(a, b *Shape, push Vec) {
	aDyn := a.body.kind == Dynamic
	bDyn := b.body.kind == Dynamic

	switch {
	case aDyn && bDyn:
		a.body.position = a.body.position.Add(push.Scale(0.5))
		b.body.position = b.body.position.Add(push.Scale(-0.5))
		stopAxis(a.body, push)
		stopAxis(b.body, push)
	case aDyn:
		a.body.position = a.body.position.Add(push)
		stopAxis(a.body, push)
	case bDyn:
		b.body.position = b.body.position.Add(push.Scale(-1))
		stopAxis(b.body, push)
	}
}

// stopAxis zeroes the velocity component opposing the push direction, so a
// body landing on a block stops falling instead of accumulating speed.
func stopAxis(b *Body, push Vec) {
	if push.X != 0 && b.velocity.X*push.X < 0 {
		b.velocity.X = 0
	}
	if push.Y != 0 && b.velocity.Y*push.Y < 0 {
		b.velocity.Y = 0
	}
}
