package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"irbana.com/pontosync/security"
)

func main() {
	funcionarioID := flag.Int("funcionario", 0, "employee id the device is bound to")
	deviceID := flag.String("device", "", "device id")
	nome := flag.String("nome", "", "employee name")
	expires := flag.Int64("expires", 24*3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if *funcionarioID == 0 || *deviceID == "" {
		log.Fatal("-funcionario and -device are required")
	}

	token, err := security.CreateDeviceToken(&security.DeviceIdentity{
		FuncionarioID: *funcionarioID,
		DeviceID:      *deviceID,
		Nome:          *nome,
	}, secret, *expires)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
