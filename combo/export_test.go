package combo

// White-box bridge for combo_test: the rank arithmetic behind TrySplit.
var (
	Unrank          = unrank
	NextCombination = nextCombination
)
