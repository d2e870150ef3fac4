package axis

// Scale maps a coordinate Range linearly onto a pixel extent [Low, High].
// When Inverted, Range.Lower lands on High (a vertical axis with y down the
// page, say).
type Scale struct {
	Range     Range
	Low, High float64 // pixel extent
	Inverted  bool
}

func (s Scale)PixelToCoord(px float64) float64 {
	ratio := (px - s.Low) / (s.High - s.Low)
	if s.Inverted { ratio = 1.0 - ratio }
	return s.Range.Lower + ratio*s.Range.Size()
}

func (s Scale)CoordToPixel(c float64) float64 {
	ratio := (c - s.Range.Lower) / s.Range.Size()
	if s.Inverted { ratio = 1.0 - ratio }
	return s.Low + ratio*(s.High-s.Low)
}
