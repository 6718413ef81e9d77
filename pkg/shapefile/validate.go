package shapefile

import "fmt"

// ValidateShape checks the structural invariants of a shape: parallel
// coordinate arrays of equal length and part offsets that start at 0, are
// strictly ascending and index into the point arrays.
//
// Geometric properties such as ring orientation or self-intersection are not
// checked.
func ValidateShape(s Shape) error {
	if s == nil {
		return &ErrInvalidShape{Type: ShapeTypeNull, Reason: "nil shape"}
	}
	mp, zs, ms := components(s)
	if mp == nil {
		return nil
	}
	t := s.ShapeType()
	n := len(mp.Xs)
	if len(mp.Ys) != n {
		return &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("%d xs but %d ys", n, len(mp.Ys))}
	}
	if zs != nil && len(zs.Zs) != n {
		return &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("%d points but %d zs", n, len(zs.Zs))}
	}
	if ms != nil && len(ms.Ms) != n {
		return &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("%d points but %d ms", n, len(ms.Ms))}
	}
	return validateParts(t, mp.Parts, n)
}

func validateParts(t ShapeType, parts []int32, numPoints int) error {
	if len(parts) == 0 {
		if numPoints != 0 {
			return &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("%d points but no parts", numPoints)}
		}
		return nil
	}
	if parts[0] != 0 {
		return &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("first part starts at %d", parts[0])}
	}
	for i := 1; i < len(parts); i++ {
		if parts[i] <= parts[i-1] {
			return &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("part %d offset %d not after %d", i, parts[i], parts[i-1])}
		}
	}
	if last := parts[len(parts)-1]; int(last) >= numPoints {
		return &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("part offset %d out of range for %d points", last, numPoints)}
	}
	return nil
}
