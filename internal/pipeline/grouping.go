package pipeline

import (
	"fmt"

	"github.com/corvid-labs/corpusmood/internal/models"
)

// KeyFunc derives the grouping key for a scored token. Returning ok=false
// skips the token for this grouping only; other groupings over the same
// tokens are unaffected.
type KeyFunc func(models.ScoredToken) (string, bool)

// GroupBy buckets scored token values under the key produced by keyFn.
func GroupBy(scored []models.ScoredToken, keyFn KeyFunc) map[string][]float64 {
	groups := make(map[string][]float64)
	for _, st := range scored {
		key, ok := keyFn(st)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], st.Value)
	}
	return groups
}

// LineWindow buckets tokens into fixed-size line windows per document,
// the grouping used for sectioning novels.
func LineWindow(size int) KeyFunc {
	return func(st models.ScoredToken) (string, bool) {
		if size <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s#%05d", st.DocumentID, st.LineNumber/size), true
	}
}

func ByDocument(st models.ScoredToken) (string, bool) {
	return st.DocumentID, st.DocumentID != ""
}

func ByCategory(st models.ScoredToken) (string, bool) {
	return st.Category, st.Category != ""
}

// ByHour groups by the hour-of-day of the record timestamp. Records whose
// timestamp failed to parse carry a zero time and are excluded here but
// still participate in the other groupings.
func ByHour(st models.ScoredToken) (string, bool) {
	if st.Timestamp.IsZero() {
		return "", false
	}
	return fmt.Sprintf("%02d", st.Timestamp.Hour()), true
}
