package services

import (
	"fulfillment/internal/core/domain/model/candidate"
)

// CandidateRanker is a domain service that annotates an ordered candidate
// list with positional display ranks.
//
// The input ordering is assumed to already reflect desirability (best first):
// the cost/quality comparison is delegated to the upstream scoring
// collaborator, and this service's sole job is presentation labeling. That
// keeps "who decides order" decoupled from "how rank is displayed".
//
// Ranking is applied only to a candidate set that has never been ranked
// before; a list already carrying rank labels is returned unchanged. The
// service annotates copies and never mutates its input.
//
// Example:
//
//	ranker := services.NewCandidateRanker()
//	ranked := ranker.RankSuppliers(suppliers)
//	fmt.Println(ranked[0].Rank.Label) // "BEST"
type CandidateRanker struct{}

// NewCandidateRanker creates a new CandidateRanker instance.
func NewCandidateRanker() CandidateRanker {
	return CandidateRanker{}
}

// RankSuppliers returns a copy of the supplier list with positional rank
// annotations. If any supplier already carries a rank label, the input is
// returned as is.
func (r CandidateRanker) RankSuppliers(suppliers []candidate.Supplier) []candidate.Supplier {
	for _, s := range suppliers {
		if !s.Rank.IsZero() {
			return suppliers
		}
	}

	ranked := make([]candidate.Supplier, len(suppliers))
	for i, s := range suppliers {
		s.Rank = candidate.RankForPosition(i)
		ranked[i] = s
	}
	return ranked
}

// RankCouriers returns a copy of the courier list with positional rank
// annotations. If any courier already carries a rank label, the input is
// returned as is.
func (r CandidateRanker) RankCouriers(couriers []candidate.Courier) []candidate.Courier {
	for _, c := range couriers {
		if !c.Rank.IsZero() {
			return couriers
		}
	}

	ranked := make([]candidate.Courier, len(couriers))
	for i, c := range couriers {
		c.Rank = candidate.RankForPosition(i)
		ranked[i] = c
	}
	return ranked
}
