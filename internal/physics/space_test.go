package physics

import (
	"math"
	"testing"
)

func TestStepIntegratesGravity(t *testing.T) {
	sp := NewSpace(Vec{X: 0, Y: 100}, 1)
	body := NewBody(Dynamic, 0, 0)
	sp.AddShape(NewBoxShape(body, 10, 10, "thing", nil))

	sp.Step(1)

	if v := body.Velocity(); v.Y != 100 {
		t.Fatalf("velocity.Y = %v, want 100", v.Y)
	}
	if p := body.Position(); p.Y != 100 {
		t.Fatalf("position.Y = %v, want 100", p.Y)
	}
}

func TestDampingRetainsFraction(t *testing.T) {
	sp := NewSpace(Vec{}, 0.5)
	body := NewBody(Dynamic, 0, 0)
	body.SetVelocity(Vec{X: 100, Y: 0})
	sp.AddShape(NewBoxShape(body, 10, 10, "thing", nil))

	sp.Step(1)

	if v := body.Velocity(); math.Abs(v.X-50) > 1e-9 {
		t.Fatalf("velocity.X = %v, want 50 after one second at damping 0.5", v.X)
	}
}

func TestStaticBodiesDoNotMove(t *testing.T) {
	sp := NewSpace(Vec{X: 0, Y: 100}, 1)
	body := NewBody(Static, 5, 5)
	sp.AddShape(NewBoxShape(body, 10, 10, "block", nil))

	sp.Step(1)

	if p := body.Position(); p.X != 5 || p.Y != 5 {
		t.Fatalf("static body moved to %v", p)
	}
}

func TestHandlerFiresOncePerContact(t *testing.T) {
	sp := NewSpace(Vec{}, 1)
	a := NewBoxShape(NewBody(Dynamic, 0, 0), 10, 10, "a", nil)
	b := NewBoxShape(NewBody(Static, 2, 0), 10, 10, "b", nil)
	sp.AddShape(a)
	sp.AddShape(b)

	calls := 0
	sp.OnCollision("a", "b", func(_, _ *Shape, _ *Arbiter) bool {
		calls++
		return false // pass through so the overlap persists
	})

	for i := 0; i < 5; i++ {
		sp.Step(0.1)
	}
	if calls != 1 {
		t.Fatalf("handler fired %d times for one continuous contact, want 1", calls)
	}
}

func TestHandlerOrientationFollowsRegistration(t *testing.T) {
	sp := NewSpace(Vec{}, 1)
	// Insert the "item" shape first so raw pair order is item, player.
	item := NewBoxShape(NewBody(Static, 0, 0), 10, 10, "item", nil)
	player := NewBoxShape(NewBody(Dynamic, 2, 0), 10, 10, "player", nil)
	sp.AddShape(item)
	sp.AddShape(player)

	var gotFirst Category
	sp.OnCollision("player", "item", func(a, _ *Shape, _ *Arbiter) bool {
		gotFirst = a.Category()
		return false
	})

	sp.Step(0.1)
	if gotFirst != "player" {
		t.Fatalf("handler first shape category = %q, want player", gotFirst)
	}
}

func TestSolidContactSeparates(t *testing.T) {
	sp := NewSpace(Vec{X: 0, Y: 100}, 1)
	ground := NewBoxShape(NewBody(Static, 0, 50), 100, 10, "block", nil)
	faller := NewBoxShape(NewBody(Dynamic, 0, 30), 10, 10, "player", nil)
	sp.AddShape(ground)
	sp.AddShape(faller)

	for i := 0; i < 100; i++ {
		sp.Step(0.015)
	}

	_, _, _, fallerBottom := faller.BB()
	_, groundTop, _, _ := ground.BB()
	if fallerBottom > groundTop+1e-6 {
		t.Fatalf("faller bottom %v sank below ground top %v", fallerBottom, groundTop)
	}
	if v := faller.Body().Velocity(); v.Y > 1e-6 {
		t.Fatalf("landed body still falling at %v", v.Y)
	}
}

func TestPassThroughContactDoesNotSeparate(t *testing.T) {
	sp := NewSpace(Vec{}, 1)
	a := NewBoxShape(NewBody(Dynamic, 0, 0), 10, 10, "player", nil)
	b := NewBoxShape(NewBody(Static, 3, 0), 10, 10, "item", nil)
	sp.AddShape(a)
	sp.AddShape(b)
	sp.OnCollision("player", "item", func(_, _ *Shape, _ *Arbiter) bool { return false })

	sp.Step(0.1)

	if !a.overlaps(b) {
		t.Fatalf("pass-through contact was separated")
	}
}

func TestRemoveShapeDuringStep(t *testing.T) {
	sp := NewSpace(Vec{}, 1)
	a := NewBoxShape(NewBody(Dynamic, 0, 0), 10, 10, "player", nil)
	b := NewBoxShape(NewBody(Static, 3, 0), 10, 10, "item", nil)
	sp.AddShape(a)
	sp.AddShape(b)

	calls := 0
	sp.OnCollision("player", "item", func(_, itemShape *Shape, _ *Arbiter) bool {
		calls++
		sp.RemoveShape(itemShape)
		return false
	})

	sp.Step(0.1)
	sp.Step(0.1) // the removed shape must no longer collide

	if calls != 1 {
		t.Fatalf("handler fired %d times, want 1 (shape removed in handler)", calls)
	}
}
