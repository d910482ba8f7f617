package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// CoalesceCoord returns the first non-nil coordinate from vals.
func CoalesceCoord(vals ...*Coord) *Coord {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
