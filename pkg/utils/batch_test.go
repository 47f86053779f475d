package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkStrings(t *testing.T) {
	ids := make([]string, 25)
	for i := range ids {
		ids[i] = fmt.Sprintf("id-%02d", i)
	}

	batches := ChunkStrings(ids, 10)

	// 25 ids com lotes de 10 produzem exatamente [10, 10, 5]
	assert.Len(t, batches, 3)
	assert.Len(t, batches[0], 10)
	assert.Len(t, batches[1], 10)
	assert.Len(t, batches[2], 5)

	// Todos os ids cobertos exatamente uma vez, sem duplicatas
	seen := make(map[string]int)
	for _, batch := range batches {
		for _, id := range batch {
			seen[id]++
		}
	}
	assert.Len(t, seen, 25)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "id %s apareceu %d vezes", id, count)
	}
}

func TestChunkStringsEdgeCases(t *testing.T) {
	assert.Nil(t, ChunkStrings(nil, 10))
	assert.Nil(t, ChunkStrings([]string{}, 10))

	// Tamanho inválido: um único lote com tudo
	batches := ChunkStrings([]string{"a", "b"}, 0)
	assert.Len(t, batches, 1)
	assert.Equal(t, []string{"a", "b"}, batches[0])

	// Menos ids que o tamanho do lote
	batches = ChunkStrings([]string{"a", "b"}, 10)
	assert.Len(t, batches, 1)
}
