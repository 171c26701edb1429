package pipeline

import (
	"github.com/corvid-labs/corpusmood/internal/lexicon"
	"github.com/corvid-labs/corpusmood/internal/models"
)

// Join performs the inner join of tokens against the lexicon. Tokens whose
// word is absent from the lexicon contribute no sentiment signal and are
// dropped, which is the intended semantic rather than an error case.
func Join(tokens []models.Token, lex *lexicon.Lexicon) []models.ScoredToken {
	scored := make([]models.ScoredToken, 0, len(tokens))
	for _, token := range tokens {
		value, ok := lex.Lookup(token.Word)
		if !ok {
			continue
		}
		scored = append(scored, models.ScoredToken{Token: token, Value: value})
	}
	return scored
}
