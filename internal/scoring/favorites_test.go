package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopCommands(t *testing.T) {
	frequency := map[string]int{
		"git status":  5,
		"git push":    3,
		"docker ps":   3,
		"kubectl get": 1,
	}

	top := TopCommands(frequency, 3)

	// Fréquence décroissante, égalités en ordre lexicographique.
	assert.Equal(t, []string{"git status", "docker ps", "git push"}, top)
}

func TestTopCommandsTruncatesAtMax(t *testing.T) {
	frequency := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}

	top := TopCommands(frequency, 2)

	assert.Equal(t, []string{"d", "c"}, top)
}

func TestTopCommandsEmptyBatch(t *testing.T) {
	top := TopCommands(map[string]int{}, 10)

	assert.Empty(t, top)
}
