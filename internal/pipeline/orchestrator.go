package pipeline

import (
	"context"
	"log"

	"superclaims/internal/domain"
	"superclaims/internal/extractor"
	"superclaims/internal/port"
	"superclaims/internal/validator"
)

// State identifies a step of the claim-processing state machine.
type State string

const (
	StateIntake         State = "intake"
	StateExtracted      State = "extracted"
	StateClassified     State = "classified"
	StateDocumentsBuilt State = "documents_built"
	StateValidated      State = "validated"
	StateDone           State = "done"
)

// Processor runs the claim pipeline for one uploaded batch.
type Processor interface {
	Process(ctx context.Context, files []domain.UploadedFile) (*domain.ClaimResult, error)
}

// Config holds orchestrator tunables.
type Config struct {
	ClassifySnippetChars int
	ExtractConcurrency   int
}

// Orchestrator sequences the pipeline stages over one ProcessingRecord.
// Transitions are strictly forward; failures flow through as data (error
// entries, null fields, unknown types), so the only way Process fails
// outright is cancellation of the request context.
type Orchestrator struct {
	extractStage  *TextExtractionStage
	classifyStage *ClassificationStage
	buildStage    *DocumentBuildStage
	engine        *validator.Engine
	decider       *validator.DecisionMaker
}

// New wires the pipeline stages around the injected collaborators.
func New(
	textExtractor port.TextExtractor,
	llmClient port.LLMClient,
	registry *extractor.Registry,
	engine *validator.Engine,
	decider *validator.DecisionMaker,
	cfg Config,
) *Orchestrator {
	return &Orchestrator{
		extractStage:  NewTextExtractionStage(textExtractor),
		classifyStage: NewClassificationStage(llmClient, cfg.ClassifySnippetChars),
		buildStage:    NewDocumentBuildStage(registry, cfg.ExtractConcurrency),
		engine:        engine,
		decider:       decider,
	}
}

// Process runs the state machine from intake through validation to done and
// converts the final record into the external response. Partial results are
// discarded on cancellation.
func (o *Orchestrator) Process(ctx context.Context, files []domain.UploadedFile) (*domain.ClaimResult, error) {
	var (
		rec        domain.ProcessingRecord
		validation domain.ValidationResult
		decision   domain.ClaimDecision
	)

	state := StateIntake
	for state != StateDone {
		if err := ctx.Err(); err != nil {
			log.Printf("pipeline.Orchestrator: canceled in state %s", state)
			return nil, err
		}

		switch state {
		case StateIntake:
			rec = o.extractStage.Run(ctx, rec, files)
			state = StateExtracted
		case StateExtracted:
			rec = o.classifyStage.Run(ctx, rec)
			state = StateClassified
		case StateClassified:
			rec = o.buildStage.Run(ctx, rec)
			state = StateDocumentsBuilt
		case StateDocumentsBuilt:
			validation = o.engine.Validate(rec.Documents)
			state = StateValidated
		case StateValidated:
			decision = o.decider.Decide(ctx, rec.Documents, validation)
			state = StateDone
		}
	}

	log.Printf("pipeline.Orchestrator: done: files=%d, documents=%d, errors=%d, decision=%s",
		len(files), len(rec.Documents), len(rec.Errors), decision.Status)

	return buildResult(rec, validation, decision), nil
}

func buildResult(rec domain.ProcessingRecord, validation domain.ValidationResult, decision domain.ClaimDecision) *domain.ClaimResult {
	docs := rec.Documents
	if docs == nil {
		docs = []domain.ExtractedDocument{}
	}
	errs := rec.Errors
	if errs == nil {
		errs = []string{}
	}
	return &domain.ClaimResult{
		Documents:     docs,
		Validation:    validation,
		ClaimDecision: decision,
		Errors:        errs,
	}
}
