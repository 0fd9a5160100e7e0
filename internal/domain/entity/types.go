package entity

// Kind identifies what an entity is for rendering and spawning
type Kind int

const (
	KindPlayer Kind = iota
	KindGround
	KindAerial
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGround:
		return "ground"
	case KindAerial:
		return "aerial"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in play-area units.
// Y grows downwards, so Top <= Bottom for a well-formed rect.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the rect
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rect
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Sprite is anything a Surface can display
type Sprite interface {
	Kind() Kind
	BoundingRect() Rect
}

// Surface is the render surface entities attach themselves to.
// Size reports the play area the entity must live in.
type Surface interface {
	Size() (w, h float64)
	Attach(s Sprite)
	Detach(s Sprite)
}
