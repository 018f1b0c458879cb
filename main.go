package main

import (
	"fmt"
	"os"

	"dkp-auctioneer/internal/audit"
	auction "dkp-auctioneer/internal/auctionService"
	"dkp-auctioneer/internal/auth"
	"dkp-auctioneer/internal/config"
	"dkp-auctioneer/internal/ledger"
	"dkp-auctioneer/internal/registry"
	"dkp-auctioneer/internal/scheduler"
	"dkp-auctioneer/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ledgerStore, err := ledger.NewFileStore(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger: %v\n", err)
		os.Exit(1)
	}

	auditLog, err := audit.NewFileLog(cfg.DataDir, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open audit log: %v\n", err)
		os.Exit(1)
	}

	reg := registry.New(registry.Rules{
		MinIncrement:   cfg.MinIncrement,
		BidCooldown:    cfg.BidCooldown,
		SnipeThreshold: cfg.SnipeThreshold,
		SnipeExtension: cfg.SnipeExtension,
	}, nil)

	var service *auction.AuctionService
	timers := scheduler.New(func(auctionID int) { service.HandleExpiry(auctionID) }, nil)
	defer timers.Stop()

	service, err = auction.NewAuctionService(auction.Deps{
		Ledger:        ledgerStore,
		Audit:         auditLog,
		Registry:      reg,
		Timers:        timers,
		LosingDeposit: cfg.LosingDeposit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build auction service: %v\n", err)
		os.Exit(1)
	}

	router := server.SetupRouter(service, auth.NewStatic(cfg.AdminIDs), cfg.LogViewLimit)

	fmt.Printf("Starting auction server on %s...\n", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
