package types

// PathContribution is one recall path's share of a result's final
// score: the weighted contribution and its percentage of the total.
type PathContribution struct {
	Score   float64 `json:"score"`
	Percent float64 `json:"percent"`
}

// Breakdown explains a final score path by path. When the final score
// is positive the percentages sum to 100; when it is exactly zero all
// three report 0 rather than dividing by zero.
type Breakdown struct {
	Idea   PathContribution `json:"idea"`
	Domain PathContribution `json:"domain"`
	Paper  PathContribution `json:"paper"`
}

// Result is one ranked entry of a recall response. Pattern is a copy
// of the pattern node's attributes at snapshot time, so callers do not
// need a live graph handle to render results.
type Result struct {
	PatternID  string       `json:"pattern_id"`
	Pattern    PatternAttrs `json:"pattern"`
	FinalScore float64      `json:"final_score"`
	Breakdown  Breakdown    `json:"breakdown"`
}
