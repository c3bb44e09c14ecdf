package scoring

import (
	"sort"
)

// TopCommands retourne les commandes les plus fréquentes d'un lot, les plus
// utilisées d'abord, tronquées à max. Les fréquences égales sont départagées
// par ordre lexicographique pour que le résultat soit déterministe.
func TopCommands(frequency map[string]int, max int) []string {
	commands := make([]string, 0, len(frequency))
	for command := range frequency {
		commands = append(commands, command)
	}
	sort.Slice(commands, func(i, j int) bool {
		if frequency[commands[i]] != frequency[commands[j]] {
			return frequency[commands[i]] > frequency[commands[j]]
		}
		return commands[i] < commands[j]
	})

	if len(commands) > max {
		commands = commands[:max]
	}
	return commands
}
