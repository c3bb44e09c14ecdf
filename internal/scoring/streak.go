package scoring

import (
	"time"

	model "github.com/jatinmayekar/terminal-tutor-backend/internal/models"
)

const day = 24 * time.Hour

// UpdateStreak met à jour la série de jours consécutifs après un lot
// d'activité. lastActive est nil lors de la toute première activité.
// L'appelant doit ensuite persister now comme nouvelle last_active_date.
//
// L'écart de jours est une troncature par tranches de 24h depuis la
// dernière activité, pas une comparaison de dates calendaires: deux syncs à
// 25h d'intervalle comptent pour "1 jour" même en traversant minuit, et
// deux syncs à 23h d'intervalle comptent pour "0 jour" même sur deux dates
// différentes. C'est le comportement du client historique, conservé tel quel.
func UpdateStreak(prev model.LearningStreak, lastActive *time.Time, now time.Time) model.LearningStreak {
	next := prev

	if lastActive == nil {
		next.Current = 1
	} else {
		switch daysSince := int(now.Sub(*lastActive) / day); {
		case daysSince <= 0:
			// même tranche de 24h, la série ne bouge pas
		case daysSince == 1:
			next.Current++
		default:
			next.Current = 1
		}
	}

	if next.Current > next.Longest {
		next.Longest = next.Current
	}
	return next
}
