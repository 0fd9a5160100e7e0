package entity

// ObstacleSpec describes an obstacle variant's size and speeds
type ObstacleSpec struct {
	Width, Height float64
	Speed         float64 // horizontal units per tick, leftwards
	BobSpeed      float64 // vertical units per tick, aerial only
}

// Obstacle is a moving hazard. Ground obstacles run along a fixed lane,
// aerial obstacles also bob between their margin line and a floor.
type Obstacle struct {
	Body
	kind      Kind
	Margin    float64
	Secondary float64
	surface   Surface
	destroyed bool

	// vertical travel band for aerial obstacles
	minY, maxY float64
}

// NewGroundObstacle creates a ground obstacle off the right edge of the surface.
// The margin places its lane as a fraction of the play-area height from the bottom.
func NewGroundObstacle(surface Surface, margin float64, spec ObstacleSpec) *Obstacle {
	w, h := surface.Size()

	o := &Obstacle{
		Body:    Body{W: spec.Width, H: spec.Height, VX: -spec.Speed},
		kind:    KindGround,
		Margin:  margin,
		surface: surface,
	}
	y := h*(1-margin) - spec.Height
	o.minY, o.maxY = y, y
	o.SetPos(w, y)
	surface.Attach(o)
	return o
}

// NewAerialObstacle creates an aerial obstacle off the right edge of the surface.
// The margin is its highest line as a fraction of the play-area height from the
// top; bottomMargin keeps it that fraction above the bottom edge.
func NewAerialObstacle(surface Surface, margin, bottomMargin float64, spec ObstacleSpec) *Obstacle {
	w, h := surface.Size()

	minY := h * margin
	maxY := h*(1-bottomMargin) - spec.Height
	if maxY < minY {
		maxY = minY
	}

	o := &Obstacle{
		Body:      Body{W: spec.Width, H: spec.Height, VX: -spec.Speed, VY: spec.BobSpeed},
		kind:      KindAerial,
		Margin:    margin,
		Secondary: bottomMargin,
		surface:   surface,
		minY:      minY,
		maxY:      maxY,
	}
	o.SetPos(w, minY)
	surface.Attach(o)
	return o
}

// Kind implements Sprite
func (o *Obstacle) Kind() Kind {
	return o.kind
}

// Advance moves the obstacle one tick. An obstacle that has fully left the
// play area on the left re-enters from the right edge.
func (o *Obstacle) Advance() {
	if o.destroyed {
		return
	}

	o.ApplyVelocity()

	if o.Y < o.minY {
		o.Y = o.minY
		o.VY = -o.VY
	} else if o.Y > o.maxY {
		o.Y = o.maxY
		o.VY = -o.VY
	}

	if o.X+o.W < 0 {
		w, _ := o.surface.Size()
		o.X = w
	}
}

// BoundingRect returns the obstacle's raw bounding rectangle
func (o *Obstacle) BoundingRect() Rect {
	return o.Rect()
}

// Destroy removes the obstacle from the surface. It is safe to call twice.
func (o *Obstacle) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true
	o.surface.Detach(o)
}

// IsDestroyed reports whether Destroy has been called
func (o *Obstacle) IsDestroyed() bool {
	return o.destroyed
}
