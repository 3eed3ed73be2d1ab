package schedule

// ClassifyChronotype maps an MEQ score to a Chronotype and its PrimeWindow.
// A nil score is not an error — it classifies as Unknown with the
// documented default window. A present score must be an integer in
// [MEQScoreMin, MEQScoreMax]; out of range fails with KindInvalidInput.
func ClassifyChronotype(meqScore *int) (Chronotype, PrimeWindow, error) {
	if meqScore == nil {
		return Unknown, primeWindowFor(Unknown), nil
	}

	score := *meqScore
	if score < MEQScoreMin || score > MEQScoreMax {
		return "", PrimeWindow{}, invalidInput(
			"meq_score %d out of range [%d, %d]", score, MEQScoreMin, MEQScoreMax)
	}

	chrono := chronotypeForScore(score)
	return chrono, primeWindowFor(chrono), nil
}

// chronotypeForScore applies the total MEQ-range mapping. Every valid
// score resolves to exactly one chronotype.
func chronotypeForScore(score int) Chronotype {
	switch {
	case score >= meqNightOwlMin && score <= meqNightOwlMax:
		return NightOwl
	case score >= meqIntermediateMin && score <= meqIntermediateMax:
		return Intermediate
	default: // meqEarlyBirdMin..meqEarlyBirdMax
		return EarlyBird
	}
}

func primeWindowFor(c Chronotype) PrimeWindow {
	bounds := primeWindowMinutes[c]
	return PrimeWindow{StartMin: bounds[0], EndMin: bounds[1], Chronotype: c}
}
