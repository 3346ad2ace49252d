package main

import (
	"fmt"
	"log"

	"superclaims/internal/config"
	"superclaims/internal/domain"
	"superclaims/internal/extractor"
	"superclaims/internal/handler"
	"superclaims/internal/llm"
	"superclaims/internal/llm/gemini"
	"superclaims/internal/pdftext"
	"superclaims/internal/pipeline"
	"superclaims/internal/port"
	"superclaims/internal/router"
	"superclaims/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// LLM collaborator: one client per configured model, tried in order
	clients := make([]port.LLMClient, 0, len(cfg.Gemini.Models))
	for _, model := range cfg.Gemini.Models {
		clients = append(clients, gemini.NewClient(&cfg.Gemini, model))
	}
	llmClient := llm.NewFallbackClient(clients, cfg.Gemini.Models)

	// PDF collaborator
	textExtractor := pdftext.NewExtractor()

	// Type-specific extractors
	registry := extractor.NewRegistry()
	registry.Register(extractor.NewBillExtractor(llmClient))
	registry.Register(extractor.NewDischargeExtractor(llmClient))
	registry.Register(extractor.NewIDCardExtractor(llmClient))

	// Validation and decision
	required := make([]domain.DocType, 0, len(cfg.Pipeline.RequiredDocTypes))
	for _, t := range cfg.Pipeline.RequiredDocTypes {
		required = append(required, domain.DocType(t))
	}
	ruleRegistry := validator.NewRegistry()
	for _, rule := range validator.ConsistencyRules(cfg.Pipeline.DateToleranceDays) {
		ruleRegistry.Register(rule)
	}
	engine := validator.NewEngine(ruleRegistry, required)
	decider := validator.NewDecisionMaker(llmClient)

	// Pipeline orchestrator
	orchestrator := pipeline.New(textExtractor, llmClient, registry, engine, decider, pipeline.Config{
		ClassifySnippetChars: cfg.Pipeline.ClassifySnippetChars,
		ExtractConcurrency:   cfg.Pipeline.ExtractConcurrency,
	})

	// Handlers and router
	claimH := handler.NewClaimHandler(orchestrator, cfg.Upload)
	healthH := handler.NewHealthHandler()
	r := router.Setup(claimH, healthH, cfg.CORS)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
