package matchmaker

// ScoreConfig holds the point values the engine awards on top of the base
// score. Scores are clamped to MaxScore so the UI never shows a "perfect"
// 100% match.
type ScoreConfig struct {
	Base int

	// Record-flag bonuses, applied regardless of preferences.
	PremiumBonus   int
	ExclusiveBonus int
	NewLaunchBonus int

	// Lifestyle bonuses.
	LuxuryPremiumBonus  int // "luxury" tag on a premium record
	FamilyBedsBonus     int // "family" tag on a record with >= FamilyMinBeds
	InvestmentBonus     int // "investment" tag on an apartment or off-plan record
	BeachfrontBonus     int // "beachfront" tag on a beachfront community
	FamilyMinBeds       int32

	// Investment-goal bonuses.
	RentalIncomeBonus        int // rental-income goal on an apartment
	CapitalAppreciationBonus int // capital-appreciation goal on an off-plan record
	GoldenVisaBonus          int // golden-visa goal on a qualifying price

	// AmenityBonus is awarded per requested amenity the record carries.
	// It defaults to 0: the product has not decided whether amenities
	// should influence ranking yet.
	AmenityBonus int

	MaxScore int

	// TopN is the default result size when the caller does not ask for one.
	TopN int
}

// DefaultScoreConfig returns the production scoring table.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Base:                     70,
		PremiumBonus:             10,
		ExclusiveBonus:           8,
		NewLaunchBonus:           5,
		LuxuryPremiumBonus:       15,
		FamilyBedsBonus:          10,
		InvestmentBonus:          12,
		BeachfrontBonus:          20,
		FamilyMinBeds:            3,
		RentalIncomeBonus:        10,
		CapitalAppreciationBonus: 15,
		GoldenVisaBonus:          12,
		AmenityBonus:             0,
		MaxScore:                 98,
		TopN:                     3,
	}
}
