package core

// Key is a logical game key, independent of the input backend
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyConfirm
	KeyBack
	keyCount
)

// KeySet is the set of keys currently held, one bit per Key
type KeySet uint16

// MovementKeys covers the four heading keys (W/A/S/D equivalents)
const MovementKeys = KeySet(1<<KeyUp | 1<<KeyDown | 1<<KeyLeft | 1<<KeyRight)

// NewKeySet builds a set from keys
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns the set including k
func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return k < keyCount && s&(1<<k) != 0
}

// Count returns the number of keys held
func (s KeySet) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Only returns the intersection with mask
func (s KeySet) Only(mask KeySet) KeySet {
	return s & mask
}

// KeyDirection maps a movement key to its heading
func KeyDirection(k Key) (Point, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return Point{}, false
}
