// Package types contains the wire shapes shared between the service layer
// and the HTTP API.
package types

// LeaderRow is one leaderboard entry: a player ranked by a chosen
// percentile metric.
type LeaderRow struct {
	Rank              int      `json:"rank"`
	Player            string   `json:"player"`
	Team              string   `json:"team"`
	Metric            string   `json:"metric"`
	Value             float64  `json:"value"`
	DisagreementIndex *float64 `json:"disagreement_index"`
}

// MetricPercentile is one bar of the percentile chart: an available metric
// and its percentile value.
type MetricPercentile struct {
	Metric     string  `json:"metric"`
	Label      string  `json:"label"`
	Percentile float64 `json:"percentile"`
}

// MetricLine is one row of the raw-vs-percentile table. Raw and Percentile
// are null when the source has no value for this player.
type MetricLine struct {
	Metric     string   `json:"metric"`
	Label      string   `json:"label"`
	Raw        *float64 `json:"raw"`
	Percentile *float64 `json:"percentile"`
}

// BestWorst names the highest and lowest percentile metrics for a player.
type BestWorst struct {
	Best            string  `json:"best"`
	BestLabel       string  `json:"best_label"`
	BestPercentile  float64 `json:"best_percentile"`
	Worst           string  `json:"worst"`
	WorstLabel      string  `json:"worst_label"`
	WorstPercentile float64 `json:"worst_percentile"`
}

// Profile is the full display payload for one selected player.
type Profile struct {
	Player            string             `json:"player"`
	Team              string             `json:"team"`
	Season            string             `json:"season"`
	Innings           int                `json:"innings"`
	Age               float64            `json:"age"`
	DisagreementIndex *float64           `json:"disagreement_index"`
	BestWorst         *BestWorst         `json:"best_worst"`
	Percentiles       []MetricPercentile `json:"percentiles"`
	Lines             []MetricLine       `json:"lines"`
}
