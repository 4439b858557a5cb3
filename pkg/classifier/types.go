// Package classifier implements the stress-level classifier: a random-forest
// inference engine over the eight workload metrics, plus the offline training
// path that produces its artifact.
package classifier

// Category is an ordinal stress classification.
type Category string

const (
	CategoryLow      Category = "Low"
	CategoryMedium   Category = "Medium"
	CategoryHigh     Category = "High"
	CategoryCritical Category = "Critical"
)

// Categories lists all stress categories in ascending severity order.
// This is also the class order of the trained artifact.
var Categories = []Category{CategoryLow, CategoryMedium, CategoryHigh, CategoryCritical}

// Rank returns the severity rank of a category (0 = Low). Unknown
// categories rank as Medium.
func (c Category) Rank() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return 1
}

// Assessment is the complete output of a stress prediction.
// Immutable once computed.
type Assessment struct {
	Category          Category             `json:"stress_level"`
	Confidence        float64              `json:"confidence"`
	Probabilities     map[Category]float64 `json:"probabilities"`
	FeatureImportance map[string]float64   `json:"feature_importance"`
}
