package combat

// Mask is a hitbox bitmap for one animation frame. Bit (x, y) set means
// the pixel can be hit.
type Mask struct {
	W, H int
	bits []bool
}

func NewRectMask(w, h int) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// NewEllipseMask fills the ellipse inscribed in a w by h frame.
func NewEllipseMask(w, h int) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := (float64(x) + 0.5 - rx) / rx
			ny := (float64(y) + 0.5 - ry) / ry
			m.bits[y*w+x] = nx*nx+ny*ny <= 1
		}
	}
	return m
}

// Set toggles a single pixel.
func (m *Mask) Set(x, y int, on bool) {
	if x >= 0 && y >= 0 && x < m.W && y < m.H {
		m.bits[y*m.W+x] = on
	}
}

// Hit tests a point in mask-local pixels.
func (m *Mask) Hit(x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	ix, iy := int(x), int(y)
	if ix >= m.W || iy >= m.H {
		return false
	}
	return m.bits[iy*m.W+ix]
}
