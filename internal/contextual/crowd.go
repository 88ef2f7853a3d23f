package contextual

import "strings"

const (
	CrowdLow    = "LOW"
	CrowdMedium = "MEDIUM"
	CrowdHigh   = "HIGH"
)

// CrowdScore maps a crowd level to a relevance score. Quieter is better; unknown levels score as MEDIUM.
func CrowdScore(level string) float64 {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case CrowdLow:
		return 1.0
	case CrowdHigh:
		return 0.4
	default:
		return 0.7
	}
}

// NormalizeCrowdLevel upper-cases a known level and returns "" for anything else.
func NormalizeCrowdLevel(level string) string {
	switch l := strings.ToUpper(strings.TrimSpace(level)); l {
	case CrowdLow, CrowdMedium, CrowdHigh:
		return l
	default:
		return ""
	}
}
