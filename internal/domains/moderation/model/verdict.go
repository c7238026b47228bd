package model

// VerdictCategory is the closed set of moderation outcomes.
type VerdictCategory string

const (
	CategorySafe          VerdictCategory = "safe"
	CategoryInappropriate VerdictCategory = "inappropriate"
	CategoryExplicit      VerdictCategory = "explicit"
	CategoryViolent       VerdictCategory = "violent"
	CategorySpam          VerdictCategory = "spam"
)

func (c VerdictCategory) IsValid() bool {
	switch c {
	case CategorySafe, CategoryInappropriate, CategoryExplicit, CategoryViolent, CategorySpam:
		return true
	}
	return false
}

func (c VerdictCategory) String() string {
	return string(c)
}

// Verdict is the outcome of classifying one unit of content (text, image
// reference, or a whole listing). It is transient display-time state and is
// never written back onto the canonical listing record.
type Verdict struct {
	Category      VerdictCategory `json:"category"`
	IsAppropriate bool            `json:"is_appropriate"`
	Confidence    float64         `json:"confidence"` // in [0, 1]
	Reasons       []string        `json:"reasons"`
}

// Safe builds an appropriate verdict with the given confidence.
func Safe(confidence float64, reasons ...string) Verdict {
	return Verdict{
		Category:      CategorySafe,
		IsAppropriate: true,
		Confidence:    confidence,
		Reasons:       reasons,
	}
}

// Inappropriate builds a blocking verdict with the given confidence.
func Inappropriate(confidence float64, reasons ...string) Verdict {
	return Verdict{
		Category:      CategoryInappropriate,
		IsAppropriate: false,
		Confidence:    confidence,
		Reasons:       reasons,
	}
}
