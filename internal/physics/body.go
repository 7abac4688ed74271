// Package physics is the simulation's physics backend: rigid-body
// integration under gravity, axis-aligned box shapes tagged with a category,
// broad-phase overlap detection, and collision-begin dispatch to handlers
// registered per unordered category pair.
package physics

// Vec is a 2D vector in pixel space. Y grows downward, matching the
// renderer's coordinate system.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// BodyKind distinguishes bodies the integrator moves from fixed ones.
type BodyKind uint8

const (
	// Static bodies never move: blocks and boundary walls.
	Static BodyKind = iota
	// Dynamic bodies integrate velocity and feel gravity: the player,
	// mobs, and dropped items.
	Dynamic
)

// Body is a point mass with a position and velocity.
type Body struct {
	kind     BodyKind
	position Vec
	velocity Vec
}

// NewBody creates a body of the given kind at (x, y).
func NewBody(kind BodyKind, x, y float64) *Body {
	return &Body{kind: kind, position: Vec{x, y}}
}

// Kind returns whether the body is Static or Dynamic.
func (b *Body) Kind() BodyKind { return b.kind }

// Position returns the body's centre position.
func (b *Body) Position() Vec { return b.position }

// SetPosition teleports the body.
func (b *Body) SetPosition(p Vec) { b.position = p }

// Velocity returns the body's current velocity.
func (b *Body) Velocity() Vec { return b.velocity }

// SetVelocity replaces the body's velocity.
func (b *Body) SetVelocity(v Vec) { b.velocity = v }

// Category tags a shape with the kind of thing it belongs to.
// Collision handlers are registered per unordered pair of categories.
type Category string

// Shape is an axis-aligned box attached to a body. Owner points back at the
// game-level thing (block, mob, dropped item, player) the shape represents.
type Shape struct {
	id       int
	body     *Body
	halfW    float64
	halfH    float64
	category Category

	// Owner is the simulation entity this shape stands in for.
	Owner any
}

// NewBoxShape creates a w×h box centred on the body.
func NewBoxShape(body *Body, w, h float64, category Category, owner any) *Shape {
	return &Shape{body: body, halfW: w / 2, halfH: h / 2, category: category, Owner: owner}
}

// Body returns the body the shape is attached to.
func (s *Shape) Body() *Body { return s.body }

// Category returns the shape's category tag.
func (s *Shape) Category() Category { return s.category }

// Size returns the shape's full width and height.
func (s *Shape) Size() (w, h float64) { return s.halfW * 2, s.halfH * 2 }

// BB returns the shape's current bounding box edges.
func (s *Shape) BB() (left, top, right, bottom float64) {
	p := s.body.position
	return p.X - s.halfW, p.Y - s.halfH, p.X + s.halfW, p.Y + s.halfH
}

// overlaps reports whether two shapes' bounding boxes intersect.
func (s *Shape) overlaps(o *Shape) bool {
	al, at, ar, ab := s.BB()
	bl, bt, br, bb := o.BB()
	return al < br && bl < ar && at < bb && bt < ab
}
