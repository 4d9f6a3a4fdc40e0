package application

import "sort"

// Tier is one of the four priority buckets used to order applications for
// recruiter review. Lower values surface first. The policy: premium and
// undecided applicants come first, but a decided premium applicant never
// outranks an undecided standard one.
type Tier int

const (
	TierPendingPremium Tier = iota
	TierPendingStandard
	TierDecidedPremium
	TierDecidedStandard

	tierCount
)

func (t Tier) String() string {
	switch t {
	case TierPendingPremium:
		return "PENDING_PREMIUM"
	case TierPendingStandard:
		return "PENDING_STANDARD"
	case TierDecidedPremium:
		return "DECIDED_PREMIUM"
	case TierDecidedStandard:
		return "DECIDED_STANDARD"
	default:
		return "UNKNOWN"
	}
}

// TierOf assigns an application to exactly one tier. The four tiers
// partition any application set exhaustively and disjointly.
func TierOf(a *Application, premium bool) Tier {
	switch {
	case a.IsPending() && premium:
		return TierPendingPremium
	case a.IsPending():
		return TierPendingStandard
	case premium:
		return TierDecidedPremium
	default:
		return TierDecidedStandard
	}
}

// OrderForReview returns the applications ordered for recruiter review:
// tiers in priority order, newest first (by effective time) within each
// tier. The result is a permutation of the input; nothing is dropped or
// duplicated.
func OrderForReview(apps []Application, isPremium func(*Application) bool) []Application {
	buckets := make([][]Application, tierCount)
	for _, app := range apps {
		tier := TierOf(&app, isPremium(&app))
		buckets[tier] = append(buckets[tier], app)
	}

	ordered := make([]Application, 0, len(apps))
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].EffectiveTime().After(bucket[j].EffectiveTime())
		})
		ordered = append(ordered, bucket...)
	}
	return ordered
}
