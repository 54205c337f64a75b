// Package strength maps backend scores to display tiers and produces instant
// local hints while an evaluation is in flight.
package strength

// Tier is a discrete strength classification derived from a [0,4] score.
type Tier struct {
	Score      int    // clamped score
	Label      string // default label; an backend classification wins for display
	Proportion int    // bar fill percentage in [20,100]
}

var tierLabels = [5]string{"Very weak", "Weak", "Moderate", "Strong", "Very strong"}

// Classify clamps score to [0,4] and returns its tier. The proportion is
// (score+1)/5 so even the weakest result draws a visible bar.
func Classify(score int) Tier {
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}
	return Tier{
		Score:      score,
		Label:      tierLabels[score],
		Proportion: (score + 1) * 100 / 5,
	}
}

// DisplayLabel prefers the backend-supplied classification when present; the
// numeric tier still drives the bar either way.
func (t Tier) DisplayLabel(backendLabel string) string {
	if backendLabel != "" {
		return backendLabel
	}
	return t.Label
}
