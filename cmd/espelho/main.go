package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"irbana.com/pontosync/config"
	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/report"
	"irbana.com/pontosync/utils"
)

// Fetches an employee's punch records and writes the monthly time sheet
// mirror as an xlsx file.
func main() {
	configPath := flag.String("config", "pontosync.yaml", "path to the configuration file")
	funcionarioID := flag.Int("funcionario", 0, "employee id")
	nome := flag.String("nome", "", "employee name for the report header")
	inicio := flag.String("inicio", "", "period start (yyyy-MM-dd)")
	fim := flag.String("fim", "", "period end (yyyy-MM-dd)")
	out := flag.String("out", "espelho.xlsx", "output file")
	flag.Parse()

	if *funcionarioID == 0 || *inicio == "" || *fim == "" {
		log.Fatal("-funcionario, -inicio and -fim are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client := v1.NewClient(cfg.BackendURL, cfg.AuthToken)
	registros, err := client.Pontos.Registros(*funcionarioID, *inicio, *fim)
	if err != nil {
		log.Fatalf("failed to fetch records: %v", err)
	}
	fmt.Printf("fetched %d record(s) for %d between %s and %s\n",
		len(registros), *funcionarioID, *inicio, *fim)

	file, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	espelho := &report.Espelho{
		FuncionarioID: *funcionarioID,
		Nome:          *nome,
		Inicio:        utils.MustParseDate(*inicio),
		Fim:           utils.MustParseDate(*fim),
		Registros:     registros,
	}
	if err := report.GerarEspelho(espelho, file); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}
