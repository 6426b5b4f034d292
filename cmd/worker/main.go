package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"billbridge/internal/adapter/http/handlers"
	"billbridge/internal/adapter/http/routes"
	"billbridge/internal/config"
	"billbridge/internal/infrastructure/database"
	"billbridge/internal/infrastructure/gateway"
	"billbridge/internal/infrastructure/ledger"
	"billbridge/internal/observability/metrics"
	"billbridge/internal/usecase"
	"billbridge/internal/worker"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	log.Printf("[worker][main] starting")

	cfgPath := os.Getenv("BILLBRIDGE_CONFIG")
	if cfgPath == "" {
		cfgPath = "appsettings.json"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[worker][main] config: %v", err)
	}
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scripts, err := database.LoadScripts(cfg.ScriptsPath)
	if err != nil {
		log.Fatalf("[worker][main] scripts: %v", err)
	}
	log.Printf("[worker][main] connecting to ledger database")
	pool, err := database.ConnectPostgres(ctx, cfg.Database.ConnectionString)
	if err != nil {
		log.Fatalf("[worker][main] database: %v", err)
	}
	defer pool.Close()
	billSource := database.NewBillSourceRepository(pool, scripts)

	gatewayClient, err := gateway.NewClient(cfg.Gateway.Domain, cfg.Gateway.APIKey, cfg.Gateway.APISecret)
	if err != nil {
		log.Fatalf("[worker][main] gateway: %v", err)
	}

	log.Printf("[worker][main] connecting to ledger server")
	ledgerClient := ledger.NewClient(cfg.Ledger.Host, cfg.Ledger.Port)
	if err := ledgerClient.Connect(); err != nil {
		log.Fatalf("[worker][main] ledger connect: %v", err)
	}
	defer ledgerClient.Disconnect()

	// Bad credentials stop the process outright; retrying them would only
	// lock the account.
	if err := ledgerClient.Authenticate(ctx, cfg.Ledger.Username, cfg.Ledger.Password); err != nil {
		log.Fatalf("[worker][main] ledger session failed, check username and password: %v", err)
	}
	if err := ledgerClient.FetchPaymentCenter(ctx); err != nil {
		log.Printf("[worker][main] payment center unavailable err=%v", err)
	}

	engine := usecase.NewSyncUseCase(billSource, gatewayClient, ledgerClient, cfg.Town, cfg.InstrumentCode, cfg.AssetAccountID)

	syncHandler := handlers.NewSyncHandler(engine, ledgerClient)
	server := &http.Server{Addr: cfg.ListenAddr, Handler: routes.NewRouter(syncHandler)}
	go func() {
		log.Printf("[worker][main] status server listening addr=%s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[worker][main] status server: %v", err)
		}
	}()

	worker.NewPoller(engine, cfg.PollInterval()).Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	log.Printf("[worker][main] stopped")
}
