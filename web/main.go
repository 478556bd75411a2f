package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"irbana.com/pontosync/geo"
	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/irbana/v1/common"
	"irbana.com/pontosync/utils"
	"irbana.com/pontosync/web/handlers"
	"irbana.com/pontosync/web/middlewares"
)

// Development stand-in for the production backend: same routes, same
// envelopes, in-memory state.
func main() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	var obra *geo.Coordenadas
	if loc := os.Getenv("OBRA_LOCALIZACAO"); loc != "" {
		obra = geo.ExtrairCoordenadas(loc)
		if obra == nil {
			log.Fatalf("invalid OBRA_LOCALIZACAO: %q", loc)
		}
		fmt.Printf("geofence enabled at %s (raio %.0fm)\n", loc, geo.RaioPadrao)
	}

	h := handlers.NewHandler(obra, geo.RaioPadrao)
	h.SeedDocumento(v1.DocumentoDTO{
		ID:            "doc-1",
		Nome:          "Ficha de EPI",
		Tipo:          "epi",
		Status:        "pendente",
		DataCriacao:   common.DateOnly{Time: utils.BrasiliaNow()},
		FuncionarioID: 1,
	})

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		protected.POST("/ponto-eletronico/registros", h.CreateRegistroHandler)
		protected.PUT("/ponto-eletronico/registros/:id", h.UpdateRegistroHandler)
		protected.GET("/ponto-eletronico/registros", h.ListRegistrosHandler)
		protected.POST("/assinaturas/assinar/:id", h.AssinarDocumentoHandler)
		protected.GET("/documentos/funcionario/:id", h.ListDocumentosHandler)
	}

	r.Run(":8090")
}
