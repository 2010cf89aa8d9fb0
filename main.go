package main

import (
	"log"
	"os"

	"github.com/OmarEl-Mohandes/PaymentGateway/internal/application/payment"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/infrastructure/database"
	echoserver "github.com/OmarEl-Mohandes/PaymentGateway/internal/presentation/echo"
	"github.com/OmarEl-Mohandes/PaymentGateway/internal/utils/config"
)

func main() {
	cfg := config.Load()

	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Printf("failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(db, cfg.PaymentsTable); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	container := payment.NewContainer(db, cfg)

	server := echoserver.NewServer(cfg, container.PaymentService)

	errC := server.Start()
	if err := <-errC; err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}
