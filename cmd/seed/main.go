package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the catalog schema and seeds categories plus a starter set of
// model listings. Safe to re-run: existing slugs are skipped.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SOCH AI SHOWCASE - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.CatalogGorm.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.AiModel{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// login_events is written via pgx, not GORM, so it has no model struct
	if err := config.CatalogGorm.Exec(`
		CREATE TABLE IF NOT EXISTS login_events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			ip_address VARCHAR(45),
			device_type VARCHAR(50),
			browser VARCHAR(100),
			os VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`).Error; err != nil {
		log.Fatalf("Failed to create login_events table: %v", err)
	}
	log.Println("✓ Schema migrated")

	seededCategories := seedCategories()
	seededModels := seedModels()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Categories created: %d\n", seededCategories)
	fmt.Printf("Models created:     %d\n", seededModels)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/models")
	fmt.Println()
}

func seedCategories() int {
	categories := []models.Category{
		{Slug: "chatbots", Name: "Chatbots", Description: "Conversational AI assistants for everyday questions and tasks", Icon: "MessageSquare"},
		{Slug: "image-generation", Name: "Image Generation", Description: "Create images and artwork from text prompts", Icon: "Image"},
		{Slug: "code-assistants", Name: "Code Assistants", Description: "AI pair programmers that write, review, and explain code", Icon: "Code"},
		{Slug: "productivity", Name: "Productivity", Description: "Automate busywork and speed up daily workflows", Icon: "Zap"},
		{Slug: "voice-audio", Name: "Voice & Audio", Description: "Speech synthesis, transcription, and audio generation", Icon: "Mic"},
		{Slug: "writing", Name: "Writing", Description: "Drafting, editing, and long-form content generation", Icon: "BookOpen"},
		{Slug: "agents", Name: "Agents", Description: "Autonomous multi-step assistants that act on your behalf", Icon: "Bot"},
		{Slug: "design", Name: "Design", Description: "AI tooling for UI, branding, and creative design work", Icon: "Palette"},
	}

	created := 0
	for i := range categories {
		var count int64
		config.CatalogGorm.Model(&models.Category{}).
			Where("slug = ?", categories[i].Slug).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := config.CatalogGorm.Create(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", categories[i].Slug, err)
		}
		created++
	}
	log.Printf("✓ Categories seeded (%d new)", created)
	return created
}

func seedModels() int {
	now := time.Now().UTC()
	installs := func(n int) *int { return &n }
	trending := func(f float64) *float64 { return &f }

	listings := []models.AiModel{
		{
			Slug:             "nova-chat",
			Name:             "Nova Chat",
			ShortDescription: "General-purpose conversational assistant with long context",
			LongDescription:  "Nova Chat answers questions, summarizes documents, and holds multi-turn conversations with a large context window. Supports file uploads and follow-up questions.",
			Category:         "chatbots",
			Provider:         "Nova Labs",
			Pricing:          models.PricingFreemium,
			Rating:           4.7,
			ReviewsCount:     12840,
			InstallsCount:    installs(2400000),
			Capabilities:     models.CapabilityList{models.CapabilityText, models.CapabilityCode},
			IsApiAvailable:   true,
			Tags:             models.TagsList{"assistant", "chat", "summarization"},
			LastUpdated:      now.AddDate(0, 0, -3),
			ModelType:        "LLM",
			ExternalURL:      "https://nova.example.com",
			Featured:         true,
			TrendingScore:    trending(96.4),
			BestFor:          models.StringList{"Research", "Customer support"},
		},
		{
			Slug:             "pixelforge",
			Name:             "PixelForge",
			ShortDescription: "Text-to-image generation with fine style control",
			LongDescription:  "PixelForge turns prompts into high resolution artwork. Style presets, inpainting, and upscaling are built in.",
			Category:         "image-generation",
			Provider:         "Forge AI",
			Pricing:          models.PricingPaid,
			Rating:           4.5,
			ReviewsCount:     8630,
			InstallsCount:    installs(910000),
			Capabilities:     models.CapabilityList{models.CapabilityImage},
			Tags:             models.TagsList{"art", "diffusion", "inpainting"},
			LastUpdated:      now.AddDate(0, 0, -10),
			ModelType:        "Diffusion",
			ExternalURL:      "https://pixelforge.example.com",
			TrendingScore:    trending(88.1),
		},
		{
			Slug:             "codepilot-pro",
			Name:             "CodePilot Pro",
			ShortDescription: "AI pair programmer for your editor and terminal",
			LongDescription:  "CodePilot Pro completes code, writes tests, and reviews pull requests across thirty languages. Ships editor plugins and a CLI.",
			Category:         "code-assistants",
			Provider:         "DevTools Inc",
			Pricing:          models.PricingFreemium,
			Rating:           4.8,
			ReviewsCount:     15200,
			InstallsCount:    installs(3100000),
			Capabilities:     models.CapabilityList{models.CapabilityCode, models.CapabilityText},
			IsApiAvailable:   true,
			IsOpenSource:     true,
			Tags:             models.TagsList{"coding", "completion", "review"},
			LastUpdated:      now.AddDate(0, 0, -1),
			ModelType:        "LLM",
			ExternalURL:      "https://codepilot.example.com",
			Featured:         true,
			TrendingScore:    trending(99.2),
		},
		{
			Slug:             "echovoice",
			Name:             "EchoVoice",
			ShortDescription: "Natural text-to-speech in 40 languages",
			LongDescription:  "EchoVoice produces lifelike narration and real-time voice cloning with consent controls.",
			Category:         "voice-audio",
			Provider:         "Echo Systems",
			Pricing:          models.PricingPaid,
			Rating:           4.3,
			ReviewsCount:     4210,
			InstallsCount:    installs(380000),
			Capabilities:     models.CapabilityList{models.CapabilityAudio},
			IsApiAvailable:   true,
			Tags:             models.TagsList{"tts", "voice", "narration"},
			LastUpdated:      now.AddDate(0, -1, 0),
			ModelType:        "TTS",
			ExternalURL:      "https://echovoice.example.com",
		},
		{
			Slug:             "draftsmith",
			Name:             "DraftSmith",
			ShortDescription: "Long-form writing assistant with tone control",
			LongDescription:  "DraftSmith drafts articles, emails, and reports, then edits them to a target tone and reading level.",
			Category:         "writing",
			Provider:         "Inkwell AI",
			Pricing:          models.PricingFree,
			Rating:           4.1,
			ReviewsCount:     2980,
			InstallsCount:    installs(540000),
			Capabilities:     models.CapabilityList{models.CapabilityText},
			Tags:             models.TagsList{"writing", "editing", "tone"},
			LastUpdated:      now.AddDate(0, -2, 0),
			ModelType:        "LLM",
			ExternalURL:      "https://draftsmith.example.com",
		},
		{
			Slug:             "taskrunner",
			Name:             "TaskRunner",
			ShortDescription: "Autonomous agent that executes multi-step workflows",
			LongDescription:  "TaskRunner plans and executes chained tasks: browse, extract, transform, and report, with human approval gates.",
			Category:         "agents",
			Provider:         "Automata",
			Pricing:          models.PricingFreemium,
			Rating:           4.4,
			ReviewsCount:     5110,
			InstallsCount:    installs(720000),
			Capabilities:     models.CapabilityList{models.CapabilityAgent, models.CapabilityText, models.CapabilityCode},
			IsApiAvailable:   true,
			Tags:             models.TagsList{"agent", "automation", "workflows"},
			LastUpdated:      now.AddDate(0, 0, -6),
			ModelType:        "Agent",
			ExternalURL:      "https://taskrunner.example.com",
			Featured:         true,
			TrendingScore:    trending(91.7),
		},
	}

	created := 0
	for i := range listings {
		var count int64
		config.CatalogGorm.Model(&models.AiModel{}).
			Where("slug = ?", listings[i].Slug).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := config.CatalogGorm.Create(&listings[i]).Error; err != nil {
			log.Fatalf("Failed to seed model %s: %v", listings[i].Slug, err)
		}
		created++
	}
	log.Printf("✓ Models seeded (%d new)", created)
	return created
}
