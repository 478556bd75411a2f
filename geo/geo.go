// Package geo validates punch locations against the worksite perimeter.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RaioPadrao is the fallback perimeter radius in meters when the obra has
// no configured radius.
const RaioPadrao = 4000.0

const earthRadiusMeters = 6371000.0

type Coordenadas struct {
	Lat float64
	Lng float64
}

// ExtrairCoordenadas parses the "lat, lng" string the backend stores in the
// localizacao field. Returns nil when the string cannot be parsed.
func ExtrairCoordenadas(localizacao string) *Coordenadas {
	parts := strings.SplitN(localizacao, ",", 2)
	if len(parts) != 2 {
		return nil
	}

	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil
	}

	return &Coordenadas{Lat: lat, Lng: lng}
}

// CalcularDistancia returns the haversine distance in meters between two
// coordinates.
func CalcularDistancia(a, b Coordenadas) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

type Validacao struct {
	Valido    bool
	Distancia float64
	Mensagem  string
}

// ValidarProximidade checks whether the user is within raio meters of the
// target. A non-positive raio falls back to RaioPadrao.
func ValidarProximidade(usuario, alvo Coordenadas, raio float64) Validacao {
	if raio <= 0 {
		raio = RaioPadrao
	}

	distancia := math.Round(CalcularDistancia(usuario, alvo))
	if distancia <= raio {
		return Validacao{
			Valido:    true,
			Distancia: distancia,
			Mensagem:  fmt.Sprintf("Localização validada: %.0fm do local permitido", distancia),
		}
	}

	return Validacao{
		Valido:    false,
		Distancia: distancia,
		Mensagem:  fmt.Sprintf("Você está a %.0fm do local permitido (raio máximo: %.0fm)", distancia, raio),
	}
}
