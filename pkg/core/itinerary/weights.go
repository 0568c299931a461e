package itinerary

// Scoring weights for ranking and day selection. They are deliberately
// additive and coarse so that a change to one input moves the outcome in an
// explainable way.
const (
	// defaultPopularity stands in for an unset popularity score.
	defaultPopularity = 50

	// mustBookBonus lifts activities that need advance booking so they
	// claim capacity before flexible ones.
	mustBookBonus = 15.0

	// durationDivisor converts duration minutes into priority points,
	// favoring longer activities that are harder to fit late.
	durationDivisor = 10.0

	// anchorMatchBonus rewards placing an activity on the day anchored to
	// its own neighborhood.
	anchorMatchBonus = 3.0

	// categoryClusterBonus nudges same-category activities onto the same
	// day.
	categoryClusterBonus = 1.0

	// infeasiblePenalty pushes days the activity cannot currently fit on
	// to the bottom of the ranking. It outweighs every bonus combined, so
	// a day with room always beats a day without; when no day has room the
	// activity overflows.
	infeasiblePenalty = -100.0

	// loadBalanceBase gives an empty day a head start that decays by one
	// point per scheduled hour, spreading activities across days.
	loadBalanceBase = 10.0

	minutesPerHour = 60.0
)
