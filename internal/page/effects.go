package page

// Tilt is the hover tilt of a card under the pointer, in degrees, plus the
// lift in pixels. ok is false when the pointer is outside the card.
func Tilt(card Rect, px, py float64) (rotX, rotY, lift float64, ok bool) {
	if !card.Contains(px, py) || card.W <= 0 || card.H <= 0 {
		return 0, 0, 0, false
	}
	x := (px - card.X) / card.W
	y := (py - card.Y) / card.H
	return (y - 0.5) * -8, (x - 0.5) * 8, 8, true
}

// CardSpin turns a card's product cube toward the pointer, in degrees.
func CardSpin(card Rect, px, py float64) (rotY, rotX float64, ok bool) {
	if !card.Contains(px, py) || card.W <= 0 || card.H <= 0 {
		return 0, 0, false
	}
	mx := ((px-card.X)/card.W - 0.5) * 2
	my := ((py-card.Y)/card.H - 0.5) * 2
	return mx * 40, -my * 20, true
}

// Parallax is the vertical offset of the i-th floating shape.
func Parallax(scrollY float64, i int) float64 {
	return scrollY * (0.05 + float64(i)*0.02)
}
