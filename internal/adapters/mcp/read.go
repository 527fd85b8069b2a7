package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cixtor/interview/internal/application/commands"
	"github.com/cixtor/interview/internal/ports"
)

// RegisterReadTools adds all read-only archive tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.RecordRepository) {
	s.AddTool(latestTool(), latestHandler(repo))
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(recentTool(), recentHandler(repo))
	s.AddTool(boundaryTool(), boundaryHandler(repo))
	s.AddTool(companiesTool(), companiesHandler(repo))
}

// --- latest ---

func latestTool() mcp.Tool {
	return mcp.NewTool("latest",
		mcp.WithDescription("Return the path of the most recent record of a company."),
		mcp.WithString("company",
			mcp.Description("Company name, matched case-insensitively against record filenames"),
			mcp.Required(),
		),
	)
}

func latestHandler(repo ports.RecordRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		company := req.GetString("company", "")

		path, err := repo.Latest(company)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(path), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List every record of a company, oldest first."),
		mcp.WithString("company",
			mcp.Description("Company name"),
			mcp.Required(),
		),
	)
}

func listHandler(repo ports.RecordRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		company := req.GetString("company", "")

		paths, err := commands.NewListCommand(repo, company).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatPaths(paths)
	}
}

// --- recent ---

func recentTool() mcp.Tool {
	return mcp.NewTool("recent",
		mcp.WithDescription("List the ten most recent records of the current year, oldest first."),
	)
}

func recentHandler(repo ports.RecordRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		paths, err := commands.NewRecentCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatPaths(paths)
	}
}

// --- boundary ---

func boundaryTool() mcp.Tool {
	return mcp.NewTool("boundary",
		mcp.WithDescription("Resolve the latest record of a company and the zero-based line of its last multipart boundary."),
		mcp.WithString("company",
			mcp.Description("Company name"),
			mcp.Required(),
		),
	)
}

func boundaryHandler(repo ports.RecordRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		company := req.GetString("company", "")

		result, err := commands.NewOpenCommand(repo, company).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s:%d", result.Path, result.Line)), nil
	}
}

// --- companies ---

func companiesTool() mcp.Tool {
	return mcp.NewTool("companies",
		mcp.WithDescription("List the company slugs found in the archive."),
	)
}

func companiesHandler(repo ports.RecordRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		companies, err := repo.Companies()
		if err != nil {
			return toolError(err)
		}
		return formatPaths(companies)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatPaths(lines []string) (*mcp.CallToolResult, error) {
	if len(lines) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
