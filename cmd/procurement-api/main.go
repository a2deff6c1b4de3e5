package main

import (
	"fmt"
	"os"

	"github.com/nurzhas/procurement-api/internal/config"
	"github.com/nurzhas/procurement-api/internal/excel"
	httphandler "github.com/nurzhas/procurement-api/internal/http"
	"github.com/nurzhas/procurement-api/internal/llm"
	"github.com/nurzhas/procurement-api/internal/logger"
	"github.com/nurzhas/procurement-api/internal/repository"
	"github.com/nurzhas/procurement-api/internal/search"
	"github.com/nurzhas/procurement-api/internal/seed"
	"github.com/nurzhas/procurement-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	supplierRepo, err := repository.NewSupplierRepository(seed.Suppliers())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed suppliers")
	}
	orderRepo, err := repository.NewOrderRepository(seed.Orders())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed orders")
	}
	complianceRepo := repository.NewComplianceRepository(seed.ComplianceRequirements())
	negotiationRepo := repository.NewNegotiationRepository()

	var generator service.TextGenerator
	if cfg.Mistral.APIKey != "" {
		generator = llm.NewClient(
			cfg.Mistral.APIURL,
			cfg.Mistral.APIKey,
			cfg.Mistral.Model,
			cfg.Mistral.Timeout,
			llm.WithLogger(log),
		)
	} else {
		log.Warn().Msg("MISTRAL_API_KEY not set, text generation disabled; deterministic fallbacks will be used")
	}

	var searcher service.SemanticSearcher
	if cfg.Weaviate.URL != "" {
		searcher = search.NewClient(cfg.Weaviate.URL, cfg.Weaviate.APIKey, search.WithLogger(log))
	} else {
		log.Warn().Msg("WEAVIATE_URL not set, semantic search disabled; searches will be filter-only")
	}

	supplierService := service.NewSupplierService(supplierRepo, searcher, generator, log)
	orderService := service.NewOrderService(orderRepo, supplierRepo, generator, excel.NewGenerator(), log)
	negotiationService := service.NewNegotiationService(supplierRepo, negotiationRepo, generator, log)
	complianceService := service.NewComplianceService(complianceRepo, generator, log)

	handler := httphandler.NewHandler(supplierService, orderService, negotiationService, complianceService, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting procurement api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
