// Dayplan API
//
// REST API for deterministic daily schedule generation: tasks, fixed
// events, and chronotype-aware preferences in, a conflict-free day plan
// out.
//
//	@title			Dayplan API
//	@version		1.0
//	@description	Generate a deterministic daily schedule from tasks, fixed events, and chronotype preferences.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			tasks
//	@tag.description	Schedulable task endpoints
//
//	@tag.name			schedule
//	@tag.description	Schedule generation endpoints
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/auratyme/dayplan/internal/api"
	"github.com/auratyme/dayplan/internal/api/handler"
	"github.com/auratyme/dayplan/internal/config"
	"github.com/auratyme/dayplan/internal/domain"
	"github.com/auratyme/dayplan/internal/langfuse"
	"github.com/auratyme/dayplan/internal/llm"
	"github.com/auratyme/dayplan/internal/repository"
	"github.com/auratyme/dayplan/internal/seed"
	"github.com/auratyme/dayplan/internal/service"
	"github.com/auratyme/dayplan/internal/telemetry"
)

const defaultLocalPromptPath = "prompts/refinement_system_prompt.md"
const promptCacheTTL = 30 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize OpenTelemetry tracer (exports to Langfuse when configured)
	ctx := context.Background()
	promptProvider := llm.CachedPromptProvider(buildSystemPromptProvider(cfg), promptCacheTTL)
	if _, err := promptProvider(ctx); err != nil {
		log.Printf("Failed to load system prompt at startup: %v", err)
	}

	tracerShutdown, err := telemetry.InitTracer(ctx, cfg, "dayplan-api")
	if err != nil {
		log.Printf("Failed to initialize telemetry: %v", err)
	} else {
		defer func() {
			if err := tracerShutdown(context.Background()); err != nil {
				log.Printf("Failed to shutdown telemetry: %v", err)
			}
		}()
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.Task{},
		&domain.FixedEvent{},
		&domain.GeneratedScheduleRecord{},
		&domain.SchedulePreset{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	eventRepo := repository.NewFixedEventRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	presetRepo := repository.NewPresetRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo, userRepo)
	fixedEventService := service.NewFixedEventService(eventRepo, userRepo)
	profileService := service.NewProfileService(profileRepo, userRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, taskRepo, eventRepo, profileRepo, userRepo, time.Duration(cfg.SolverTimeBudgetMs)*time.Millisecond)
	presetService := service.NewPresetService(presetRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIRefinementModel, promptProvider)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, refinement endpoint will be unavailable")
	}
	refinementService := service.NewRefinementService(scheduleRepo, openaiClient)

	// Initialize Langfuse client (logs its own status)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	fixedEventHandler := handler.NewFixedEventHandler(fixedEventService)
	profileHandler := handler.NewProfileHandler(profileService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	refinementHandler := handler.NewRefinementHandler(refinementService, langfuseClient)
	presetHandler := handler.NewPresetHandler(presetService)

	// Setup router
	router := api.NewRouter(
		userHandler,
		taskHandler,
		fixedEventHandler,
		profileHandler,
		scheduleHandler,
		refinementHandler,
		presetHandler,
	)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func buildSystemPromptProvider(cfg *config.Config) llm.SystemPromptProvider {
	localPath := cfg.LangfusePromptSavePath
	if localPath == "" {
		localPath = defaultLocalPromptPath
	}

	return func(ctx context.Context) (string, error) {
		if cfg.LangfusePromptName != "" {
			prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
				BaseURL:     cfg.LangfuseBaseURL,
				PublicKey:   cfg.LangfusePublicKey,
				SecretKey:   cfg.LangfuseSecretKey,
				PromptName:  cfg.LangfusePromptName,
				PromptLabel: cfg.LangfusePromptLabel,
				SavePath:    localPath,
			})
			if err == nil {
				return prompt, nil
			}
			log.Printf("Langfuse prompt '%s' unavailable (%v); attempting local fallback", cfg.LangfusePromptName, err)
		}

		if localPath != "" {
			prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
				SavePath: localPath,
			})
			if err == nil {
				return prompt, nil
			}
			log.Printf("Failed to load system prompt from %s: %v; using built-in default", localPath, err)
		}

		return llm.DefaultSystemPrompt, nil
	}
}
