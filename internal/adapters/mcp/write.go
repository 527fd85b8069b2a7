package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cixtor/interview/internal/application/commands"
	"github.com/cixtor/interview/internal/ports"
)

// RegisterWriteTools adds the record creation tool to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.RecordRepository, logger *slog.Logger) {
	s.AddTool(createTool(), createHandler(repo, logger))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a new record for a company. Company metadata is copied from its latest record when one exists."),
		mcp.WithString("company",
			mcp.Description("Company name"),
			mcp.Required(),
		),
		mcp.WithString("timestamp",
			mcp.Description("Optional timestamp: today@HH:MM, YYYY-MM-DDTHH:MM or YYYY-MM-DDTHH:MM:SS. Defaults to now."),
		),
	)
}

func createHandler(repo ports.RecordRepository, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		company := req.GetString("company", "")
		when := req.GetString("timestamp", "")

		cmd := commands.NewCreateCommand(repo, company, when).WithLogger(logger)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s\n%s:%d", result.Message, result.Record.Path, result.Line)), nil
	}
}
