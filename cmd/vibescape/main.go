package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	_ "modernc.org/sqlite"

	"github.com/jasonacox/vibescape/internal/api"
	"github.com/jasonacox/vibescape/internal/imagegen"
	"github.com/jasonacox/vibescape/internal/refresh"
	"github.com/jasonacox/vibescape/internal/season"
	"github.com/jasonacox/vibescape/internal/store"
	"github.com/jasonacox/vibescape/internal/viewer"
)

const version = "1.0.5"

var cli struct {
	Port string `env:"PORT" default:"4002" help:"HTTP listen port."`
	DB   string `env:"DB_PATH" default:"data/vibescape.db" help:"Path to the SQLite database."`

	Timezone string `env:"TIMEZONE" default:"America/Los_Angeles" help:"Timezone for season calculations."`
	Date     string `env:"DATE" help:"Date override (YYYY-MM-DD or MM-DD) for previewing seasonal output."`

	ImageProvider string `env:"IMAGE_PROVIDER" default:"swarmui" enum:"swarmui,openai" help:"Image generation backend."`

	SwarmUI       string  `env:"SWARMUI" default:"http://localhost:7801" help:"SwarmUI base URL."`
	ImageModel    string  `env:"IMAGE_MODEL" default:"Flux/flux1-schnell-fp8" help:"SwarmUI model name."`
	ImageWidth    int     `env:"IMAGE_WIDTH" default:"1280" help:"Generated image width."`
	ImageHeight   int     `env:"IMAGE_HEIGHT" default:"720" help:"Generated image height."`
	ImageCFGScale float64 `env:"IMAGE_CFGSCALE" default:"1.0" help:"Classifier-free guidance scale."`
	ImageSteps    int     `env:"IMAGE_STEPS" default:"6" help:"Diffusion steps."`
	ImageSeed     int     `env:"IMAGE_SEED" default:"-1" help:"Generation seed, -1 for random."`
	ImageTimeout  int     `env:"IMAGE_TIMEOUT" default:"300" help:"Generation timeout in seconds."`

	OpenAIImageAPIKey  string `env:"OPENAI_IMAGE_API_KEY" help:"OpenAI API key."`
	OpenAIImageAPIBase string `env:"OPENAI_IMAGE_API_BASE" default:"https://api.openai.com/v1" help:"OpenAI-compatible API base URL."`
	OpenAIImageModel   string `env:"OPENAI_IMAGE_MODEL" default:"dall-e-3" help:"OpenAI image model."`
	OpenAIImageSize    string `env:"OPENAI_IMAGE_SIZE" default:"1024x1024" help:"OpenAI image size."`

	RefreshSeconds int `env:"REFRESH_SECONDS" default:"60" help:"Seconds a generated scene stays fresh."`
	PollInterval   int `env:"POLL_INTERVAL" default:"10" help:"Seconds between page polls for a new scene."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("vibescape"),
		kong.Description("Seasonal AI scene generator and viewer."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	log.Printf("starting vibescape version %s", version)

	apiKeyState := "NOT SET"
	if cli.OpenAIImageAPIKey != "" {
		apiKeyState = "SET"
	}
	log.Printf("effective configuration:\n"+
		"PORT: %s\n"+
		"IMAGE_PROVIDER: %s\n"+
		"SWARMUI: %s\n"+
		"IMAGE_MODEL: %s\n"+
		"IMAGE_CFGSCALE: %g\n"+
		"IMAGE_STEPS: %d\n"+
		"IMAGE_WIDTH: %d\n"+
		"IMAGE_HEIGHT: %d\n"+
		"IMAGE_SEED: %d\n"+
		"IMAGE_TIMEOUT: %d\n"+
		"REFRESH_SECONDS: %d\n"+
		"OPENAI_IMAGE_API_BASE: %s\n"+
		"OPENAI_IMAGE_MODEL: %s\n"+
		"OPENAI_IMAGE_SIZE: %s\n"+
		"OPENAI_IMAGE_API_KEY: %s",
		cli.Port, cli.ImageProvider, cli.SwarmUI, cli.ImageModel,
		cli.ImageCFGScale, cli.ImageSteps, cli.ImageWidth, cli.ImageHeight,
		cli.ImageSeed, cli.ImageTimeout, cli.RefreshSeconds,
		cli.OpenAIImageAPIBase, cli.OpenAIImageModel, cli.OpenAIImageSize,
		apiKeyState)

	db, err := sql.Open("sqlite", cli.DB)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	if stats, err := st.GenerationStats(); err == nil {
		log.Printf("generation history: %d generated, %d failed", stats.Generated, stats.Failed)
	}

	loc, err := time.LoadLocation(cli.Timezone)
	if err != nil {
		log.Printf("Warning: could not load timezone %s, using UTC: %v", cli.Timezone, err)
		loc = time.UTC
	}

	blender, err := season.New(season.Config{
		DateOverride: cli.Date,
		Location:     loc,
	})
	if err != nil {
		log.Fatalf("season blender: %v", err)
	}
	log.Printf("day of year %d, active seasons: %v", blender.DayOfYearNow(), blender.ActiveSeasonsNow())

	timeout := time.Duration(cli.ImageTimeout) * time.Second

	var provider imagegen.Provider
	var endpoint string
	switch cli.ImageProvider {
	case "swarmui":
		provider = imagegen.NewSwarmUIProvider(imagegen.SwarmUIConfig{
			BaseURL:  cli.SwarmUI,
			Model:    cli.ImageModel,
			Width:    cli.ImageWidth,
			Height:   cli.ImageHeight,
			CFGScale: cli.ImageCFGScale,
			Steps:    cli.ImageSteps,
			Seed:     cli.ImageSeed,
			Timeout:  timeout,
		})
		endpoint = cli.SwarmUI
	case "openai":
		p, err := imagegen.NewOpenAIProvider(imagegen.OpenAIConfig{
			APIKey:  cli.OpenAIImageAPIKey,
			BaseURL: cli.OpenAIImageAPIBase,
			Model:   cli.OpenAIImageModel,
			Size:    cli.OpenAIImageSize,
			Timeout: timeout,
		})
		if err != nil {
			log.Fatalf("openai provider: %v", err)
		}
		provider = p
		endpoint = cli.OpenAIImageAPIBase
	default:
		log.Fatalf("unknown image provider %q", cli.ImageProvider)
	}
	log.Printf("image provider: %s (%s)", provider.Name(), endpoint)

	icons, err := imagegen.RenderIcons()
	if err != nil {
		log.Printf("Warning: could not render icons: %v", err)
	}

	svc := imagegen.NewService(blender, provider, st,
		time.Duration(cli.RefreshSeconds)*time.Second, timeout)
	tracker := viewer.NewTracker()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// First scene generates in the background so startup is not
	// blocked on a slow provider.
	go func() {
		log.Println("generating initial image")
		if err := svc.GenerateInitial(ctx); err != nil {
			log.Printf("initial image: %v", err)
		}
	}()

	scheduler := refresh.New(svc, tracker, st, time.Duration(cli.PollInterval)*time.Second)
	go scheduler.Run(ctx)

	server := api.NewServer(blender, svc, tracker, st, icons, api.Config{
		Port:           cli.Port,
		Version:        version,
		Provider:       cli.ImageProvider,
		Model:          modelFor(cli.ImageProvider),
		Endpoint:       endpoint,
		RefreshSeconds: cli.RefreshSeconds,
		PollSeconds:    cli.PollInterval,
	})

	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func modelFor(provider string) string {
	if provider == "openai" {
		return cli.OpenAIImageModel
	}
	return cli.ImageModel
}
