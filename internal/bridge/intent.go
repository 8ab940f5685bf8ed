package bridge

import (
	"strings"

	"qrmenu/internal/models"
)

// Intent classifies a customer reply while the bridge waits for an
// order confirmation.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentAffirmative
	IntentNegative
)

// Classifier decides whether a message opens the confirmation flow and
// how a reply inside that flow should be read. It is an interface so
// the keyword matcher can be swapped for a fuzzy or semantic one
// without touching the state machine.
type Classifier interface {
	IsOrderIntent(locale models.Locale, text string) bool
	Confirmation(locale models.Locale, text string) Intent
}

// KeywordClassifier matches small fixed per-locale keyword sets with
// case-insensitive substring matching. Deliberately not a model call:
// "did the customer just agree to spend money" must never be subject
// to generative drift.
type KeywordClassifier struct{}

var orderKeywords = map[models.Locale][]string{
	models.LocaleTR: {"sipariş ver", "siparişi onayla", "sipariş et", "siparişimi tamamla", "ödemeye geç"},
	models.LocaleEN: {"place order", "place my order", "confirm order", "checkout", "complete my order"},
}

var affirmativeKeywords = map[models.Locale][]string{
	models.LocaleTR: {"evet", "onaylıyorum", "onayla", "tamam", "olur"},
	models.LocaleEN: {"yes", "confirm", "sure", "ok", "okay", "yep"},
}

var negativeKeywords = map[models.Locale][]string{
	models.LocaleTR: {"hayır", "iptal", "vazgeçtim", "istemiyorum"},
	models.LocaleEN: {"no", "cancel", "nevermind", "never mind", "don't"},
}

func (KeywordClassifier) IsOrderIntent(locale models.Locale, text string) bool {
	return containsAny(text, orderKeywords[locale])
}

func (KeywordClassifier) Confirmation(locale models.Locale, text string) Intent {
	// Negatives win: "no, cancel the order" must not read as a yes.
	if containsAny(text, negativeKeywords[locale]) {
		return IntentNegative
	}
	if containsAny(text, affirmativeKeywords[locale]) {
		return IntentAffirmative
	}
	return IntentUnknown
}

// containsAny matches multi-word keywords as substrings and single
// words as whole tokens, so "no" does not fire on "know" or "notes".
func containsAny(text string, keywords []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	tokens := strings.FieldsFunc(lowered, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	})

	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(lowered, kw) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if tok == kw {
				return true
			}
		}
	}
	return false
}
