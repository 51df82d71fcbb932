package entity

// SatisfactionLevel is the display label for a predicted class
type SatisfactionLevel string

const (
	SatisfactionNeutral     SatisfactionLevel = "Neutral"
	SatisfactionSatisfied   SatisfactionLevel = "Satisfied"
	SatisfactionUnsatisfied SatisfactionLevel = "Un-Satisfied"
)

// satisfactionMapping is read-only after package init.
var satisfactionMapping = map[int]SatisfactionLevel{
	0: SatisfactionNeutral,
	1: SatisfactionSatisfied,
	2: SatisfactionUnsatisfied,
}

// MapOutput translates a model class into its satisfaction level.
// The boolean is false for classes outside the table; that is not an error.
func MapOutput(class int) (SatisfactionLevel, bool) {
	level, ok := satisfactionMapping[class]
	return level, ok
}

// String returns the label text
func (l SatisfactionLevel) String() string {
	return string(l)
}
