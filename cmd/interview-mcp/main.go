package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cixtor/interview/internal/adapters/filesystem"
	mcpadapter "github.com/cixtor/interview/internal/adapters/mcp"
	"github.com/cixtor/interview/internal/config"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "path to the config file")
	rootFlag := flag.String("root", "", "path to the archive")
	flag.Parse()

	cfg := config.NewDefaultConfig()
	if err := config.Load(*configFlag, cfg); err != nil {
		log.Fatalf("interview-mcp: %v", err)
	}
	if *rootFlag != "" {
		cfg.Root = *rootFlag
	}

	// stdout carries the protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	repo := filesystem.NewRepository(cfg.Root, filesystem.WithLogger(logger))

	mcpServer := server.NewMCPServer(
		"interview-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)
	mcpadapter.RegisterWriteTools(mcpServer, repo, logger)

	logger.Info("serving archive over stdio", slog.String("root", repo.Root()))
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("interview-mcp: %v", err)
	}
}
