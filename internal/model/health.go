package model

// StatusForScore maps a health score onto its status band. Thresholds are
// chosen so the seeded fixtures stay self-consistent (92 excellent,
// 78 good, 45 at-risk).
func StatusForScore(score int) HealthStatus {
	switch {
	case score >= 85:
		return HealthExcellent
	case score >= 65:
		return HealthGood
	case score >= 40:
		return HealthAtRisk
	default:
		return HealthCritical
	}
}

// AtRisk reports whether the client needs attention regardless of raw score.
func (c Client) AtRisk() bool {
	return c.HealthScore.Status == HealthAtRisk || c.HealthScore.Status == HealthCritical
}
