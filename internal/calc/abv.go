package calc

// ABVModel selects one of the alcohol formulas. The two are kept as
// independent functions rather than one parameterized formula; their shapes
// differ and neither is a special case of the other.
type ABVModel string

const (
	ABVModelSimple ABVModel = "simple"
	ABVModelABW    ABVModel = "abw"
)

// ABVSimple is the standard linear approximation: (OG − FG) × 131.25.
// It returns 0 when OG equals FG and may go negative when FG > OG; treating
// that as invalid is the caller's job, not the formula's.
func ABVSimple(og, fg float64) float64 {
	if !isFinite(og) || !isFinite(fg) {
		return 0
	}
	return (og - fg) * 131.25
}

// ABVByWeight computes apparent attenuation-by-weight and converts it to
// alcohol by volume. A secondary estimate, not the default.
func ABVByWeight(og, fg float64) float64 {
	if !isFinite(og) || !isFinite(fg) {
		return 0
	}
	denom := 1.775 - og
	if denom == 0 {
		return 0
	}
	abw := 76.08 * (og - fg) / denom
	return abw * (fg / 0.794)
}

// ABV dispatches on the selected model; an unknown model falls back to the
// simple formula.
func ABV(m ABVModel, og, fg float64) float64 {
	switch m {
	case ABVModelABW:
		return ABVByWeight(og, fg)
	default:
		return ABVSimple(og, fg)
	}
}
