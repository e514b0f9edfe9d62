// Command wandercast is the main entry point for the Wandercast podcast
// generation server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	anyllmlib "github.com/mozilla-ai/any-llm-go"

	"github.com/wandercast/wandercast/internal/config"
	"github.com/wandercast/wandercast/internal/health"
	"github.com/wandercast/wandercast/internal/observe"
	"github.com/wandercast/wandercast/internal/podcast"
	"github.com/wandercast/wandercast/internal/resilience"
	"github.com/wandercast/wandercast/internal/server"
	"github.com/wandercast/wandercast/internal/store"
	"github.com/wandercast/wandercast/pkg/provider/script"
	"github.com/wandercast/wandercast/pkg/provider/script/anyllm"
	scriptopenai "github.com/wandercast/wandercast/pkg/provider/script/openai"
	"github.com/wandercast/wandercast/pkg/provider/speech"
	"github.com/wandercast/wandercast/pkg/provider/speech/elevenlabs"
)

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "wandercast: config file %q not found — copy configs/example.yaml to get started\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "wandercast: %v\n", err)
		}
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	logger := newLogger(cfg.Server.LogLevel)
	slog.SetDefault(logger)

	slog.Info("wandercast starting",
		"config", *configPath,
		"listen_addr", cfg.Server.ListenAddr,
		"log_level", cfg.Server.LogLevel,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName: "wandercast",
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	// ── Provider registry ─────────────────────────────────────────────────────
	reg := config.NewRegistry()
	registerBuiltinProviders(reg)

	scriptProv, speechProv, err := buildProviders(cfg, reg)
	if err != nil {
		slog.Error("failed to build providers", "err", err)
		return 1
	}

	// ── Pipeline ──────────────────────────────────────────────────────────────
	fileStore := store.New(cfg.Server.AudioDir)
	generator := podcast.NewGenerator(scriptProv, speechProv, fileStore,
		podcast.WithMaxConcurrentSynthesis(cfg.Podcast.MaxConcurrentSynthesis),
	)

	// ── HTTP server ───────────────────────────────────────────────────────────
	healthHandler := health.New(
		health.ScriptConfigured(func() bool { return scriptProv != nil }),
		health.SpeechReachable(speechProv),
		health.AudioDirWritable(cfg.Server.AudioDir),
	)
	srv := server.New(generator, cfg, server.WithHealthHandler(healthHandler))

	// ── Config hot reload ─────────────────────────────────────────────────────
	watcher, err := config.NewWatcher(*configPath, func(old, new *config.Config) {
		diff := config.Diff(old, new)
		if diff.LogLevelChanged {
			slog.SetDefault(newLogger(diff.NewLogLevel))
			slog.Info("log level changed", "level", diff.NewLogLevel)
		}
		srv.ApplyDiff(diff)
	})
	if err != nil {
		slog.Warn("config watcher unavailable, hot reload disabled", "err", err)
	} else {
		defer watcher.Stop()
	}

	printStartupSummary(cfg)

	// ── Run until signalled ───────────────────────────────────────────────────
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(cfg.Server.ListenAddr, cfg.Server.TLS)
	}()

	slog.Info("server ready — press Ctrl+C to shut down")

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("http server error", "err", err)
			return 1
		}
	case <-ctx.Done():
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	slog.Info("shutdown signal received, stopping…")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// ── Provider wiring ───────────────────────────────────────────────────────────

// registerBuiltinProviders wires all built-in provider factories into reg.
// Each factory receives a config.ProviderEntry and constructs the appropriate
// provider from the real implementation packages.
func registerBuiltinProviders(reg *config.Registry) {
	// ── Script ────────────────────────────────────────────────────────────────
	// The native OpenAI provider ships first-class; everything else goes
	// through the any-llm-go universal backend.
	reg.RegisterScript("openai", func(entry config.ProviderEntry) (script.Provider, error) {
		var opts []scriptopenai.Option
		if entry.BaseURL != "" {
			opts = append(opts, scriptopenai.WithBaseURL(entry.BaseURL))
		}
		if entry.Model != "" {
			opts = append(opts, scriptopenai.WithModel(entry.Model))
		}
		return scriptopenai.New(entry.APIKey, opts...)
	})

	for _, providerName := range []string{
		"anthropic", "gemini", "deepseek", "mistral", "groq",
	} {
		reg.RegisterScript(providerName, func(entry config.ProviderEntry) (script.Provider, error) {
			var opts []anyllmlib.Option
			if entry.APIKey != "" {
				opts = append(opts, anyllmlib.WithAPIKey(entry.APIKey))
			}
			if entry.BaseURL != "" {
				opts = append(opts, anyllmlib.WithBaseURL(entry.BaseURL))
			}
			return anyllm.New(providerName, entry.Model, opts...)
		})
	}

	// ollama is a local server; it uses BaseURL for the address, not an API key.
	reg.RegisterScript("ollama", func(entry config.ProviderEntry) (script.Provider, error) {
		var opts []anyllmlib.Option
		if entry.BaseURL != "" {
			opts = append(opts, anyllmlib.WithBaseURL(entry.BaseURL))
		}
		return anyllm.New("ollama", entry.Model, opts...)
	})

	// ── Speech ────────────────────────────────────────────────────────────────
	reg.RegisterSpeech("elevenlabs", func(entry config.ProviderEntry) (speech.Provider, error) {
		var opts []elevenlabs.Option
		if entry.Model != "" {
			opts = append(opts, elevenlabs.WithModel(entry.Model))
		}
		if entry.BaseURL != "" {
			opts = append(opts, elevenlabs.WithBaseURL(entry.BaseURL))
		}
		return elevenlabs.New(entry.APIKey, opts...)
	})
}

// buildProviders instantiates the script and speech providers named in cfg.
// A missing entry leaves the corresponding provider nil; the pipeline then
// rejects generation requests until one is configured.
func buildProviders(cfg *config.Config, reg *config.Registry) (script.Provider, speech.Provider, error) {
	var scriptProv script.Provider
	var speechProv speech.Provider

	if name := cfg.Providers.Script.Name; name != "" {
		p, err := reg.CreateScript(cfg.Providers.Script)
		if err != nil {
			return nil, nil, fmt.Errorf("create script provider %q: %w", name, err)
		}
		scriptProv = p
		slog.Info("provider created", "kind", "script", "name", name)

		if entries := cfg.Providers.Script.Fallbacks; len(entries) > 0 {
			fb := resilience.NewScriptFallback(p, name, resilience.FallbackConfig{})
			for _, entry := range entries {
				alt, err := reg.CreateScript(entry)
				if err != nil {
					return nil, nil, fmt.Errorf("create script fallback %q: %w", entry.Name, err)
				}
				fb.AddFallback(entry.Name, alt)
				slog.Info("fallback registered", "kind", "script", "name", entry.Name)
			}
			scriptProv = fb
		}
	}

	if name := cfg.Providers.Speech.Name; name != "" {
		p, err := reg.CreateSpeech(cfg.Providers.Speech)
		if err != nil {
			return nil, nil, fmt.Errorf("create speech provider %q: %w", name, err)
		}
		speechProv = p
		slog.Info("provider created", "kind", "speech", "name", name)

		if entries := cfg.Providers.Speech.Fallbacks; len(entries) > 0 {
			fb := resilience.NewSpeechFallback(p, name, resilience.FallbackConfig{})
			for _, entry := range entries {
				alt, err := reg.CreateSpeech(entry)
				if err != nil {
					return nil, nil, fmt.Errorf("create speech fallback %q: %w", entry.Name, err)
				}
				fb.AddFallback(entry.Name, alt)
				slog.Info("fallback registered", "kind", "speech", "name", entry.Name)
			}
			speechProv = fb
		}
	}

	return scriptProv, speechProv, nil
}

// ── Startup summary ───────────────────────────────────────────────────────────

func printStartupSummary(cfg *config.Config) {
	fmt.Println("╔═══════════════════════════════════════╗")
	fmt.Println("║        Wandercast — startup summary   ║")
	fmt.Println("╠═══════════════════════════════════════╣")
	printProvider("Script", cfg.Providers.Script.Name, cfg.Providers.Script.Model)
	printProvider("Speech", cfg.Providers.Speech.Name, cfg.Providers.Speech.Model)
	fmt.Printf("║  Audio dir       : %-19s ║\n", trimCell(cfg.Server.AudioDir))
	fmt.Printf("║  Default language: %-19s ║\n", cfg.Podcast.DefaultLanguage)
	fmt.Printf("║  Default voice   : %-19s ║\n", cfg.Podcast.DefaultVoice)
	if cfg.Server.ListenAddr != "" {
		fmt.Printf("║  Listen addr     : %-19s ║\n", cfg.Server.ListenAddr)
	}
	fmt.Println("╚═══════════════════════════════════════╝")
}

func printProvider(kind, name, model string) {
	value := name
	if value == "" {
		value = "(not configured)"
	} else if model != "" {
		value = name + " / " + model
	}
	fmt.Printf("║  %-12s    : %-19s ║\n", kind, trimCell(value))
}

func trimCell(value string) string {
	if len(value) > 19 {
		return value[:16] + "…"
	}
	return value
}

// ── Logger ─────────────────────────────────────────────────────────────────────

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
