package domain

import "github.com/shopspring/decimal"

// Statistics summarises one page of responses.
type Statistics struct {
	TotalResponses           int
	AgeDistribution          map[string]int
	GenderDistribution       map[string]int
	FrequencyDistribution    map[string]int
	SatisfactionDistribution map[string]int
	AverageSatisfaction      decimal.Decimal
	ResponsesByDate          map[string]int
}

// ComputeStatistics はページ内の回答だけを集計する。コレクション全体の統計ではない。
// 平均満足度は数値として解釈できた値だけで計算し、小数第2位で四捨五入する。
func ComputeStatistics(responses []Response) Statistics {
	stats := Statistics{
		TotalResponses:           len(responses),
		AgeDistribution:          make(map[string]int),
		GenderDistribution:       make(map[string]int),
		FrequencyDistribution:    make(map[string]int),
		SatisfactionDistribution: make(map[string]int),
		AverageSatisfaction:      decimal.Zero,
		ResponsesByDate:          make(map[string]int),
	}

	var sum, scored int64
	for _, r := range responses {
		stats.AgeDistribution[r.Age]++
		stats.GenderDistribution[r.Gender]++
		stats.FrequencyDistribution[r.Frequency]++
		stats.SatisfactionDistribution[r.Satisfaction]++
		stats.ResponsesByDate[NewDateKey(r.Timestamp, r.CreatedAt).String()]++

		if score, err := NewSatisfaction(r.Satisfaction); err == nil {
			sum += score.Int64()
			scored++
		}
	}

	if scored > 0 {
		stats.AverageSatisfaction = decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(scored), 2)
	}
	return stats
}
