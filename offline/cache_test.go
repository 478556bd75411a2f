package offline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/kv"
	"irbana.com/pontosync/utils"
)

func TestCacheRoundTrip(t *testing.T) {
	cache := NewCache(kv.NewMemoryStore(), time.Hour)

	assert.Nil(t, cache.Registros(7, "2025-03-10"))

	registro := &v1.RegistroPontoDTO{
		ID:            42,
		FuncionarioID: 7,
		Data:          "2025-03-10",
		Entrada:       utils.Ptr("08:00"),
	}
	require.NoError(t, cache.SetRegistros(7, "2025-03-10", registro))

	cached := cache.Registros(7, "2025-03-10")
	require.NotNil(t, cached)
	assert.Equal(t, registro, cached)
	assert.Equal(t, 42, cache.RegistroID(7, "2025-03-10"))

	require.NoError(t, cache.SetRegistros(7, "2025-03-10", nil))
	assert.Nil(t, cache.Registros(7, "2025-03-10"))
}

func TestCacheExpires(t *testing.T) {
	cache := NewCache(kv.NewMemoryStore(), time.Hour)
	clock := time.Date(2025, 3, 10, 8, 0, 0, 0, utils.BrasiliaTZ)
	cache.now = func() time.Time { return clock }

	require.NoError(t, cache.SetRegistros(7, "2025-03-10", &v1.RegistroPontoDTO{ID: 1}))
	assert.NotNil(t, cache.Registros(7, "2025-03-10"))

	clock = clock.Add(2 * time.Hour)
	assert.Nil(t, cache.Registros(7, "2025-03-10"))
}

func TestApplyPontoCreatesProjection(t *testing.T) {
	cache := NewCache(kv.NewMemoryStore(), time.Hour)

	require.NoError(t, cache.ApplyPonto(PontoPayload{
		FuncionarioID: 7,
		Data:          "2025-03-10",
		Campo:         "entrada",
		Hora:          "08:00",
		Localizacao:   utils.Ptr("-23.5505, -46.6333"),
	}))

	registro := cache.Registros(7, "2025-03-10")
	require.NotNil(t, registro)
	assert.Equal(t, 0, registro.ID) // unacknowledged: no backend ID yet
	require.NotNil(t, registro.Entrada)
	assert.Equal(t, "08:00", *registro.Entrada)
	require.NotNil(t, registro.Localizacao)
	assert.Equal(t, "-23.5505, -46.6333", *registro.Localizacao)
}

func TestApplyPontoMergesIntoExistingProjection(t *testing.T) {
	cache := NewCache(kv.NewMemoryStore(), time.Hour)
	require.NoError(t, cache.SetRegistros(7, "2025-03-10", &v1.RegistroPontoDTO{
		ID:            42,
		FuncionarioID: 7,
		Data:          "2025-03-10",
		Entrada:       utils.Ptr("08:00"),
	}))

	require.NoError(t, cache.ApplyPonto(PontoPayload{
		FuncionarioID: 7,
		Data:          "2025-03-10",
		Campo:         "saida_almoco",
		Hora:          "12:00",
	}))

	registro := cache.Registros(7, "2025-03-10")
	require.NotNil(t, registro)
	assert.Equal(t, 42, registro.ID)
	assert.Equal(t, "08:00", *registro.Entrada)
	assert.Equal(t, "12:00", *registro.SaidaAlmoco)
}

func TestApplyPontoUnknownCampo(t *testing.T) {
	cache := NewCache(kv.NewMemoryStore(), time.Hour)
	err := cache.ApplyPonto(PontoPayload{FuncionarioID: 7, Data: "2025-03-10", Campo: "almoco"})
	assert.Error(t, err)
}

func TestApplyAssinatura(t *testing.T) {
	cache := NewCache(kv.NewMemoryStore(), time.Hour)
	require.NoError(t, cache.SetDocumentos(7, []v1.DocumentoDTO{
		{ID: "doc-1", Status: "pendente"},
		{ID: "doc-2", Status: "pendente"},
	}))

	require.NoError(t, cache.ApplyAssinatura(7, "doc-2"))

	documentos := cache.Documentos(7)
	require.Len(t, documentos, 2)
	assert.Equal(t, "pendente", documentos[0].Status)
	assert.Equal(t, "assinado", documentos[1].Status)

	// no cached list: nothing to project onto
	assert.NoError(t, cache.ApplyAssinatura(99, "doc-1"))
}
