package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Praça da Sé and Pátio do Colégio, about 440m apart.
var (
	se     = Coordenadas{Lat: -23.5505, Lng: -46.6333}
	colegio = Coordenadas{Lat: -23.5475, Lng: -46.6361}
)

func TestExtrairCoordenadas(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Coordenadas
	}{
		{name: "Plain pair", input: "-23.5505, -46.6333", want: &Coordenadas{Lat: -23.5505, Lng: -46.6333}},
		{name: "No space", input: "-23.5505,-46.6333", want: &Coordenadas{Lat: -23.5505, Lng: -46.6333}},
		{name: "Missing comma", input: "-23.5505 -46.6333", want: nil},
		{name: "Not numbers", input: "lat, lng", want: nil},
		{name: "Lat out of range", input: "95.0, 10.0", want: nil},
		{name: "Lng out of range", input: "10.0, 185.0", want: nil},
		{name: "Empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtrairCoordenadas(tt.input))
		})
	}
}

func TestCalcularDistancia(t *testing.T) {
	d := CalcularDistancia(se, colegio)
	assert.InDelta(t, 440, d, 40)

	assert.Zero(t, CalcularDistancia(se, se))
}

func TestValidarProximidade(t *testing.T) {
	dentro := ValidarProximidade(se, colegio, 1000)
	assert.True(t, dentro.Valido)
	assert.Contains(t, dentro.Mensagem, "validada")

	fora := ValidarProximidade(se, colegio, 100)
	assert.False(t, fora.Valido)
	assert.Greater(t, fora.Distancia, 100.0)
	assert.Contains(t, fora.Mensagem, "raio máximo")
}

func TestValidarProximidadeRaioPadrao(t *testing.T) {
	// Zero radius falls back to the 4km default, which covers this distance.
	v := ValidarProximidade(se, colegio, 0)
	assert.True(t, v.Valido)
}
