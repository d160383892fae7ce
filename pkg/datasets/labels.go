package datasets

// StatusLabels maps each readiness status to its display copy.
var StatusLabels = map[Status]string{
	StatusOnTrack: "On track",
	StatusAtRisk:  "At risk",
	StatusBlocked: "Blocked",
}

// ScoreKey identifies one of the named scores in a ScoreSet.
type ScoreKey string

// Score keys in the order they are displayed.
const (
	ScoreOverall      ScoreKey = "overallScore"
	ScorePerformance  ScoreKey = "performanceScore"
	ScoreRisk         ScoreKey = "riskScore"
	ScoreValuations   ScoreKey = "valuationsScore"
	ScoreFundamentals ScoreKey = "fundamentalsScore"
	ScoreTechnical    ScoreKey = "technicalScore"
	ScoreSentiment    ScoreKey = "sentimentScore"
	ScoreCost         ScoreKey = "costScore"
)

// ScoreOrder is the fixed display order of the score set.
var ScoreOrder = []ScoreKey{
	ScoreOverall,
	ScorePerformance,
	ScoreRisk,
	ScoreValuations,
	ScoreFundamentals,
	ScoreTechnical,
	ScoreSentiment,
	ScoreCost,
}

// ScoreLabels maps score keys to their display labels.
var ScoreLabels = map[ScoreKey]string{
	ScoreOverall:      "Overall",
	ScorePerformance:  "Performance",
	ScoreRisk:         "Risk",
	ScoreValuations:   "Valuations",
	ScoreFundamentals: "Fundamentals",
	ScoreTechnical:    "Technical",
	ScoreSentiment:    "Sentiment",
	ScoreCost:         "Cost",
}

// Score returns the value for a score key, or zero for an unknown key.
func (s ScoreSet) Score(key ScoreKey) int {
	switch key {
	case ScoreOverall:
		return s.Overall
	case ScorePerformance:
		return s.Performance
	case ScoreRisk:
		return s.Risk
	case ScoreValuations:
		return s.Valuations
	case ScoreFundamentals:
		return s.Fundamentals
	case ScoreTechnical:
		return s.Technical
	case ScoreSentiment:
		return s.Sentiment
	case ScoreCost:
		return s.Cost
	}
	return 0
}
