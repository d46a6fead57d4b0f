package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jquispe/puntoventa-api/pkg/search"
)

func TestNormalize_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "camion", search.Normalize("Camión"))
	assert.Equal(t, "nino", search.Normalize("NIÑO"))
	assert.Equal(t, "electrico", search.Normalize("Eléctrico"))
}

func TestMatches_BusquedaDeMostrador(t *testing.T) {
	assert.True(t, search.Matches("camion", "Camión Volvo FH"))
	assert.True(t, search.Matches("VOLVO", "Camión Volvo FH"))
	assert.True(t, search.Matches("lap-001", "Laptop HP", "LAP-001"), "también busca por código")
	assert.False(t, search.Matches("toyota", "Camión Volvo FH"))
}

func TestMatches_QueryVacia(t *testing.T) {
	assert.True(t, search.Matches("  ", "cualquier cosa"), "sin filtro, todo coincide")
}
