package datasets

import (
	"sort"
	"strings"
)

// defaultRows is the built-in dataset set used whenever the host supplies
// no usable entity data. It mirrors the seeded governance portfolio.
var defaultRows = []Dataset{
	{
		Summary: Summary{
			Name:           "Global Equity Trades",
			Overview:       "Daily executed orders captured across listed venues.",
			Owner:          "Priya Shah",
			OwnerRole:      "Director, Capital Markets",
			Office:         "Capital Markets Data Office",
			Contact:        "Jordan Blake",
			ReadinessNotes: "Schema signed off on 10 Nov 2025; lineage & controls refreshed.",
			Status:         StatusOnTrack,
			Deadline:       "2025-12-05",
		},
		Detail: Detail{
			BusinessUnit:  "Capital Markets",
			CoverageCount: 128,
			DataFrequency: "Intraday (5 min)",
			DataTypes:     []string{"Orders", "Executions", "Venue analytics"},
			Geography:     []string{"Global", "Americas", "EMEA", "APAC"},
			History:       "24 months of intraday snapshots maintained with regulatory retention.",
			Description: "Comprehensive trade execution dataset harmonised across order books " +
				"and partner venues for post-trade analytics and regulatory review.",
			Domain:    "Markets",
			Subdomain: "Equities & Trading",
			Features: []string{
				"Real-time venue harmonisation with venue liquidity markers",
				"Machine learning anomaly detection scoring for compliance triage",
				"Entitlement-ready extracts aligned to regional regulatory standards",
			},
			Languages:        []string{"English", "Japanese"},
			MarketingURL:     "https://example.com/datasets/global-equity-trades",
			MinimumFrequency: "15 minutes",
			Name:             "Global Equity Trades",
			Regions:          []string{"Global", "Americas", "EMEA", "APAC"},
			Tags:             []string{"Markets", "Execution", "Regulatory"},
			TimePeriod:       "2019 - Present",
			Coverage: CoverageMetric{
				CoverageCount: 128,
				DataFrequency: "Intraday (5 min)",
				DataTypes:     "Listed equity and single-stock derivative trades",
				Geography:     "Global coverage with venue-level depth",
				History:       "24 months of archival records",
			},
			Scores: ScoreSet{
				Cost:         86,
				Fundamentals: 72,
				Overall:      88,
				Performance:  84,
				Risk:         77,
				Sentiment:    69,
				Technical:    82,
				Valuations:   91,
			},
		},
	},
	{
		Summary: Summary{
			Name:           "ESG Ratings Vault",
			Overview:       "Consolidated ESG scoring across issuers and funds.",
			Owner:          "Marcus Lee",
			OwnerRole:      "Head of Sustainable Data",
			Office:         "Sustainable Finance DGO",
			Contact:        "Emily Chen",
			ReadinessNotes: "Risk classification pending legal notation review.",
			Status:         StatusAtRisk,
			Deadline:       "2025-12-19",
		},
		Detail: Detail{
			BusinessUnit:  "Sustainable Finance",
			CoverageCount: 860,
			DataFrequency: "Weekly refresh",
			DataTypes:     []string{"Issuer disclosures", "Fund KPIs", "Controversy signals"},
			Geography:     []string{"Global", "Americas", "Europe", "Asia"},
			History:       "Ten-year longitudinal history including back-cast scores.",
			Description: "Unified ESG scoring vault consolidating issuer scores, controversy " +
				"screens, and fund-level sustainability analytics.",
			Domain:    "Sustainable Investing",
			Subdomain: "ESG Scoring",
			Features: []string{
				"Materiality-weighted scoring framework aligned to SASB and TCFD",
				"Dynamic controversy heat map with narrative summaries",
				"ESG fund look-through with asset-level transparency",
			},
			Languages:        []string{"English", "French", "German", "Mandarin"},
			MarketingURL:     "https://example.com/datasets/esg-ratings-vault",
			MinimumFrequency: "Weekly",
			Name:             "ESG Ratings Vault",
			Regions:          []string{"Global", "Americas", "Europe", "Asia"},
			Tags:             []string{"ESG", "Sustainability", "Ratings"},
			TimePeriod:       "2014 - Present",
			Coverage: CoverageMetric{
				CoverageCount: 860,
				DataFrequency: "Weekly refresh",
				DataTypes:     "Issuer-level ESG factors and fund KPIs",
				Geography:     "Global issuers with regional scoring overlays",
				History:       "10-year retrievable history",
			},
			Scores: ScoreSet{
				Cost:         64,
				Fundamentals: 83,
				Overall:      79,
				Performance:  76,
				Risk:         71,
				Sentiment:    74,
				Technical:    68,
				Valuations:   70,
			},
		},
	},
	{
		Summary: Summary{
			Name:           "Fixed Income Curves",
			Overview:       "Aggregated end-of-day yield curves for sovereign debt.",
			Owner:          "Ana Rodriguez",
			OwnerRole:      "Lead Quant Strategist",
			Office:         "Rates & Credit Data Office",
			Contact:        "Dev Patel",
			ReadinessNotes: "Model documentation complete; awaiting quant sign-off.",
			Status:         StatusOnTrack,
			Deadline:       "2026-01-11",
		},
		Detail: Detail{
			BusinessUnit:  "Rates & Credit",
			CoverageCount: 312,
			DataFrequency: "Daily end-of-day",
			DataTypes:     []string{"Yield curves", "Forward curves", "Vol surfaces"},
			Geography:     []string{"Global", "Emerging Markets", "Developed Markets"},
			History:       "Historical span from 2005 with monthly archiving.",
			Description: "Calibrated sovereign yield curves with spline smoothing, benchmark " +
				"spreads, and volatility overlays for risk and valuation teams.",
			Domain:    "Fixed Income",
			Subdomain: "Curve Analytics",
			Features: []string{
				"Regime-aware smoothing with macro factor adjustments",
				"Forward projection engine with scenario stress testing",
				"Volatility surface exports optimised for risk engines",
			},
			Languages:        []string{"English", "Spanish"},
			MarketingURL:     "https://example.com/datasets/fixed-income-curves",
			MinimumFrequency: "Daily",
			Name:             "Fixed Income Curves",
			Regions:          []string{"Global", "Emerging Markets", "Developed Markets"},
			Tags:             []string{"Rates", "Risk", "Valuation"},
			TimePeriod:       "2005 - Present",
			Coverage: CoverageMetric{
				CoverageCount: 312,
				DataFrequency: "Daily end-of-day",
				DataTypes:     "Government bond and swap reference curves",
				Geography:     "Global coverage with EM detail",
				History:       "20 years of calibrated curves",
			},
			Scores: ScoreSet{
				Cost:         58,
				Fundamentals: 81,
				Overall:      83,
				Performance:  85,
				Risk:         88,
				Sentiment:    55,
				Technical:    79,
				Valuations:   87,
			},
		},
	},
	{
		Summary: Summary{
			Name:           "Trade Surveillance Alerts",
			Overview:       "Machine learning anomalies surfaced for compliance review.",
			Owner:          "Noah Williams",
			OwnerRole:      "Chief Surveillance Officer",
			Office:         "Compliance Intelligence DGO",
			Contact:        "Sofia Anders",
			ReadinessNotes: "Controls gap identified in APAC ingestion flow.",
			Status:         StatusBlocked,
			Deadline:       "2026-02-02",
		},
		Detail: Detail{
			BusinessUnit:  "Compliance Intelligence",
			CoverageCount: 62,
			DataFrequency: "Near real-time",
			DataTypes:     []string{"Alert narratives", "Control IDs", "Trade context"},
			Geography:     []string{"Global", "Americas", "APAC"},
			History:       "Rolling 18 months with case audit trail.",
			Description: "Surveillance dataset delivering ML-prioritised alerts, related " +
				"meta-data, and case progression context for compliance teams.",
			Domain:    "Compliance",
			Subdomain: "Surveillance",
			Features: []string{
				"Adaptive risk scoring with supervisory tuning controls",
				"Embedded workflow integration with case management APIs",
				"Explainability pack with contributing signal breakdown",
			},
			Languages:        []string{"English"},
			MarketingURL:     "https://example.com/datasets/trade-surveillance-alerts",
			MinimumFrequency: "10 minutes",
			Name:             "Trade Surveillance Alerts",
			Regions:          []string{"Global", "Americas", "APAC"},
			Tags:             []string{"Compliance", "Surveillance", "Risk"},
			TimePeriod:       "2021 - Present",
			Coverage: CoverageMetric{
				CoverageCount: 62,
				DataFrequency: "Near real-time",
				DataTypes:     "Alert narratives with case enrichment",
				Geography:     "Global venues with APAC depth",
				History:       "18 months rolling history",
			},
			Scores: ScoreSet{
				Cost:         73,
				Fundamentals: 66,
				Overall:      75,
				Performance:  78,
				Risk:         92,
				Sentiment:    60,
				Technical:    71,
				Valuations:   68,
			},
		},
	},
}

// DefaultDatasets returns a deep copy of the built-in dataset set.
func DefaultDatasets() []Dataset {
	return CloneDatasets(defaultRows)
}

// DefaultSummaries returns the summary rows of the built-in dataset set.
func DefaultSummaries() []Summary {
	result := make([]Summary, len(defaultRows))
	for i, row := range defaultRows {
		result[i] = row.Summary
	}
	return result
}

func defaultDetailMap() map[string]Detail {
	result := make(map[string]Detail, len(defaultRows))
	for _, row := range defaultRows {
		result[row.Name] = row.Detail
	}
	return result
}

// DefaultDetailMap returns a deep copy of the built-in detail map.
func DefaultDetailMap() map[string]Detail {
	return CloneDetailMap(defaultDetailMap())
}

// DefaultRegions returns the distinct regions present in the built-in
// dataset set, sorted.
func DefaultRegions() []string {
	return distinctFromDetails(func(d Detail) []string { return d.Regions })
}

// DefaultLanguages returns the distinct languages present in the built-in
// dataset set, sorted.
func DefaultLanguages() []string {
	return distinctFromDetails(func(d Detail) []string { return d.Languages })
}

func distinctFromDetails(pick func(Detail) []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, row := range defaultRows {
		for _, value := range pick(row.Detail) {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" || seen[trimmed] {
				continue
			}
			seen[trimmed] = true
			result = append(result, trimmed)
		}
	}
	sort.Strings(result)
	return result
}
