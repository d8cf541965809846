package model

// HopTiming is the timing class of a hop addition. The class decides which
// utilization formula applies and which time/temperature fields are
// meaningful. Keep these values stable; they appear in JSON and CSV output.
type HopTiming string

const (
	HopTimingBoil      HopTiming = "boil"
	HopTimingFirstWort HopTiming = "first_wort"
	HopTimingWhirlpool HopTiming = "whirlpool"
	HopTimingDryHop    HopTiming = "dry_hop"
	HopTimingMash      HopTiming = "mash"
)

// InKettle reports whether the addition sits in the kettle and therefore
// counts toward hop wort absorption. Dry hops go into the fermenter and
// mash hops stay behind in the tun.
func (t HopTiming) InKettle() bool {
	switch t {
	case HopTimingBoil, HopTimingFirstWort, HopTimingWhirlpool:
		return true
	default:
		return false
	}
}

// HopAddition is one hop charge.
// Units:
// - MassG: g
// - AlphaAcid: fraction 0..1
// - BoilTimeMin: min, meaningful for boil and first-wort additions
// - WhirlpoolTimeMin / WhirlpoolTempC: whirlpool additions only
type HopAddition struct {
	Name             string    `json:"name,omitempty"`
	MassG            float64   `json:"mass_g"`
	AlphaAcid        float64   `json:"alpha_acid"`
	Timing           HopTiming `json:"timing"`
	BoilTimeMin      float64   `json:"boil_time_min,omitempty"`
	WhirlpoolTimeMin float64   `json:"whirlpool_time_min,omitempty"`
	WhirlpoolTempC   float64   `json:"whirlpool_temp_c,omitempty"`
}
