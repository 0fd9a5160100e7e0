package entity

// Input is the directional input snapshot for one frame
type Input struct {
	Left, Right, Up, Down bool
}

// PlayerSpec describes the player's size, speed and start position
type PlayerSpec struct {
	Width, Height  float64
	Speed          float64 // units per tick
	StartX, StartY float64
}

// Player is the keyboard-driven avatar the obstacles must miss
type Player struct {
	Body
	spec    PlayerSpec
	surface Surface
	input   Input

	// Resets counts ResetPosition calls since creation
	Resets int
}

// NewPlayer creates a player at its start position and attaches it to the surface
func NewPlayer(surface Surface, spec PlayerSpec) *Player {
	p := &Player{
		Body:    Body{W: spec.Width, H: spec.Height},
		spec:    spec,
		surface: surface,
	}
	p.SetPos(spec.StartX, spec.StartY)
	if surface != nil {
		surface.Attach(p)
	}
	return p
}

// Kind implements Sprite
func (p *Player) Kind() Kind {
	return KindPlayer
}

// SetInput stores the input used by the next Advance
func (p *Player) SetInput(in Input) {
	p.input = in
}

// Advance moves the player one tick according to the current input
func (p *Player) Advance() {
	p.VX, p.VY = 0, 0
	if p.input.Left {
		p.VX -= p.spec.Speed
	}
	if p.input.Right {
		p.VX += p.spec.Speed
	}
	if p.input.Up {
		p.VY -= p.spec.Speed
	}
	if p.input.Down {
		p.VY += p.spec.Speed
	}
	p.ApplyVelocity()

	if p.surface != nil {
		w, h := p.surface.Size()
		p.Clamp(w, h)
	}
}

// BoundingRect returns the player's raw bounding rectangle
func (p *Player) BoundingRect() Rect {
	return p.Rect()
}

// ResetPosition puts the player back at its start position
func (p *Player) ResetPosition() {
	p.SetPos(p.spec.StartX, p.spec.StartY)
	p.VX, p.VY = 0, 0
	p.Resets++
}
