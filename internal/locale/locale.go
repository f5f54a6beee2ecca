// Package locale wraps gotext for the handful of strings the game shows.
// Without an installed catalog every message falls back to its English msgid.
package locale

import (
	"gridpac/internal/state"

	"github.com/leonelquinteros/gotext"
)

const domain = "gridpac"

// Init loads catalogs from dir for lang. Missing catalogs are not an error.
func Init(dir, lang string) {
	if dir == "" {
		return
	}
	if lang == "" {
		lang = "en_US"
	}
	gotext.Configure(dir, lang, domain)
}

func Score(n int) string { return gotext.Get("Score: %d", n) }

func Dismiss() string { return gotext.Get("Press Enter to play again") }

// Banner is the end-of-round notification for an outcome.
func Banner(o state.Outcome) string {
	switch o {
	case state.OutcomeWin:
		return gotext.Get("YOU WIN!")
	case state.OutcomeLoss:
		return gotext.Get("GAME OVER!")
	default:
		return ""
	}
}
