package model

// Rank is the holder tier derived from hold duration.
type Rank string

var (
	RankPaperHands      Rank = "PAPER HANDS"
	RankObsidianDiamond Rank = "OBSIDIAN DIAMOND"
	RankTripleDiamond   Rank = "TRIPLE DIAMOND"
	RankDoubleDiamond   Rank = "DOUBLE DIAMOND"
	RankDiamondHands    Rank = "DIAMOND HANDS"
	RankIronHands       Rank = "IRON HANDS"
	RankFreshHands      Rank = "FRESH HANDS"
)

// RankFor returns the tier for a holder. Any outgoing spend forfeits every
// diamond tier regardless of duration.
func RankFor(holdDays int64, everSold bool) Rank {
	switch {
	case everSold:
		return RankPaperHands
	case holdDays >= 2000:
		return RankObsidianDiamond
	case holdDays >= 1500:
		return RankTripleDiamond
	case holdDays >= 1000:
		return RankDoubleDiamond
	case holdDays >= 365:
		return RankDiamondHands
	case holdDays >= 90:
		return RankIronHands
	default:
		return RankFreshHands
	}
}
