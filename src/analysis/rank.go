package analysis

import (
	"sort"

	"github.com/jiaming2012/options-alpha/src/models"
)

// Rank orders summaries by mean return, best first. The sort is stable, so
// summaries with equal mean returns keep their input order. The input slice
// is not modified.
func Rank(summaries models.ContractSummaries) models.ContractSummaries {
	ranked := make(models.ContractSummaries, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MeanReturn > ranked[j].MeanReturn
	})

	return ranked
}
