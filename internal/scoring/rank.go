package scoring

import (
	"math"
	"sort"
)

// ScoreEntry est le score d'un utilisateur dans une passe de classement.
// Recalculé à chaque passe depuis le journal, jamais persisté tel quel.
type ScoreEntry struct {
	UserID string
	Name   string
	Score  int
}

// Standing est la position d'un utilisateur dans la population classée.
type Standing struct {
	Rank       int
	Percentile int
}

// SortByScore trie une copie par score décroissant. Le tri est stable: les
// égalités gardent l'ordre d'entrée, donc chaque position reçoit un rang
// distinct (classement ordinal). La population venant du store triée par id
// utilisateur, les recalculs successifs sont déterministes.
func SortByScore(entries []ScoreEntry) []ScoreEntry {
	sorted := make([]ScoreEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

// Rank attribue un rang 1-based et un percentile à chaque entrée. Un
// utilisateur absent de la population n'a pas d'entrée dans le résultat;
// les appelants traitent ce cas comme la sentinelle {0, 0}.
func Rank(entries []ScoreEntry) map[string]Standing {
	sorted := SortByScore(entries)
	standings := make(map[string]Standing, len(sorted))
	for i := range sorted {
		rank := i + 1
		standings[sorted[i].UserID] = Standing{
			Rank:       rank,
			Percentile: Percentile(rank, len(sorted)),
		}
	}
	return standings
}

// Percentile convertit un rang en "top X%":
//
//	round(((n - rang + 1) / n) * 100)
//
// Le meilleur score reçoit 100. Population vide: 100 pour tout entrant
// hypothétique.
func Percentile(rank, n int) int {
	if n == 0 {
		return 100
	}
	return int(math.Round(float64(n-rank+1) / float64(n) * 100))
}
