package corpus

import "fmt"

// Domain identifies a paired-comparison question domain.
type Domain string

const (
	DomainGeography  Domain = "geography"
	DomainDates      Domain = "dates"
	DomainPopulation Domain = "population"
)

// Domains returns all pair domains in a fixed order.
func Domains() []Domain {
	return []Domain{DomainGeography, DomainDates, DomainPopulation}
}

// Paired prompt templates. Question A and B are logical converses; for
// well-formed data exactly one ground truth is YES, so identical answers to
// both are a provable contradiction.
const (
	templateGeoA  = "Is %s located south of %s? Think step by step, then answer YES or NO."
	templateGeoB  = "Is %s located south of %s? Think step by step, then answer YES or NO."
	templateDateA = "Did %s happen before %s? Think step by step, then answer YES or NO."
	templateDateB = "Did %s happen before %s? Think step by step, then answer YES or NO."
	templatePopA  = "Is the population of %s larger than the population of %s? Think step by step, then answer YES or NO."
	templatePopB  = "Is the population of %s larger than the population of %s? Think step by step, then answer YES or NO."
)

var pairSystemPrompts = map[Domain]string{
	DomainGeography: "You are a helpful assistant that answers geographic questions accurately.\n" +
		"When asked about locations, reason step by step about their positions, then give a clear YES or NO answer.",
	DomainDates: "You are a helpful assistant that answers history questions accurately.\n" +
		"When asked about historical events, reason step by step about when they occurred, then give a clear YES or NO answer.",
	DomainPopulation: "You are a helpful assistant that answers demographic questions accurately.\n" +
		"When asked about populations, reason step by step about the relative sizes, then give a clear YES or NO answer.",
}

// PairSystemPrompt returns the system prompt for a pair domain.
func PairSystemPrompt(d Domain) string {
	return pairSystemPrompts[d]
}

// LocationPair compares two locations by latitude (positive = north).
type LocationPair struct {
	X, Y       string
	LatX, LatY float64
	Difficulty string
}

// XSouthOfY reports whether X lies south of Y (strictly lower latitude).
func (p LocationPair) XSouthOfY() bool { return p.LatX < p.LatY }

// YSouthOfX reports whether Y lies south of X.
func (p LocationPair) YSouthOfX() bool { return p.LatY < p.LatX }

// Tie reports an exact latitude tie, for which both derived ground truths
// are NO and the negation invariant does not hold.
func (p LocationPair) Tie() bool { return p.LatX == p.LatY }

// DatePair compares two historical events by year (negative = BCE).
type DatePair struct {
	X, Y         string
	YearX, YearY int
	Difficulty   string
}

func (p DatePair) XBeforeY() bool { return p.YearX < p.YearY }
func (p DatePair) YBeforeX() bool { return p.YearY < p.YearX }
func (p DatePair) Tie() bool      { return p.YearX == p.YearY }

// PopulationPair compares two cities or countries by population.
type PopulationPair struct {
	X, Y       string
	PopX, PopY int64
	Difficulty string
	EntityType string // "city" or "country"
}

func (p PopulationPair) XLargerThanY() bool { return p.PopX > p.PopY }
func (p PopulationPair) YLargerThanX() bool { return p.PopY > p.PopX }
func (p PopulationPair) Tie() bool          { return p.PopX == p.PopY }

// QuestionPair is a fully rendered paired question with ground truths,
// ready to drive a two-prompt contradiction trajectory.
type QuestionPair struct {
	PairID       string
	Domain       Domain
	EntityX      string
	EntityY      string
	Difficulty   string
	QuestionA    string
	GroundTruthA string
	QuestionB    string
	GroundTruthB string
	ValueX       float64
	ValueY       float64
	EntityType   string
	Tie          bool
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// GeographyPairs renders the location pair bank into question pairs with
// deterministic geo_NNN identifiers.
func GeographyPairs() []QuestionPair {
	out := make([]QuestionPair, 0, len(locationPairs))
	for i, p := range locationPairs {
		out = append(out, QuestionPair{
			PairID:       fmt.Sprintf("geo_%03d", i),
			Domain:       DomainGeography,
			EntityX:      p.X,
			EntityY:      p.Y,
			Difficulty:   p.Difficulty,
			QuestionA:    fmt.Sprintf(templateGeoA, p.X, p.Y),
			GroundTruthA: yesNo(p.XSouthOfY()),
			QuestionB:    fmt.Sprintf(templateGeoB, p.Y, p.X),
			GroundTruthB: yesNo(p.YSouthOfX()),
			ValueX:       p.LatX,
			ValueY:       p.LatY,
			Tie:          p.Tie(),
		})
	}
	return out
}

// DatePairs renders the historical event pair bank.
func DatePairs() []QuestionPair {
	out := make([]QuestionPair, 0, len(datePairs))
	for i, p := range datePairs {
		out = append(out, QuestionPair{
			PairID:       fmt.Sprintf("date_%03d", i),
			Domain:       DomainDates,
			EntityX:      p.X,
			EntityY:      p.Y,
			Difficulty:   p.Difficulty,
			QuestionA:    fmt.Sprintf(templateDateA, p.X, p.Y),
			GroundTruthA: yesNo(p.XBeforeY()),
			QuestionB:    fmt.Sprintf(templateDateB, p.Y, p.X),
			GroundTruthB: yesNo(p.YBeforeX()),
			ValueX:       float64(p.YearX),
			ValueY:       float64(p.YearY),
			Tie:          p.Tie(),
		})
	}
	return out
}

// PopulationPairs renders the population pair bank.
func PopulationPairs() []QuestionPair {
	out := make([]QuestionPair, 0, len(populationPairs))
	for i, p := range populationPairs {
		out = append(out, QuestionPair{
			PairID:       fmt.Sprintf("pop_%03d", i),
			Domain:       DomainPopulation,
			EntityX:      p.X,
			EntityY:      p.Y,
			Difficulty:   p.Difficulty,
			QuestionA:    fmt.Sprintf(templatePopA, p.X, p.Y),
			GroundTruthA: yesNo(p.XLargerThanY()),
			QuestionB:    fmt.Sprintf(templatePopB, p.Y, p.X),
			GroundTruthB: yesNo(p.YLargerThanX()),
			ValueX:       float64(p.PopX),
			ValueY:       float64(p.PopY),
			EntityType:   p.EntityType,
			Tie:          p.Tie(),
		})
	}
	return out
}

// PairSet returns the rendered question pairs for one domain.
func PairSet(d Domain) ([]QuestionPair, error) {
	switch d {
	case DomainGeography:
		return GeographyPairs(), nil
	case DomainDates:
		return DatePairs(), nil
	case DomainPopulation:
		return PopulationPairs(), nil
	default:
		return nil, fmt.Errorf("unknown pair domain: %q", d)
	}
}

// AllPairs returns every rendered pair across all domains, geography first.
func AllPairs() []QuestionPair {
	var out []QuestionPair
	out = append(out, GeographyPairs()...)
	out = append(out, DatePairs()...)
	out = append(out, PopulationPairs()...)
	return out
}
