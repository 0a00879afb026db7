// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/pathwayhq/pathway/launch"
	"github.com/pathwayhq/pathway/mcputil"
	"github.com/pathwayhq/pathway/urlutil"
)

func newMCPCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		Long: `Start a Model Context Protocol server over stdio, exposing browser
detection, profile listing, and URL opening to MCP-compatible clients.
The open_url tool is rate limited so a client cannot spawn browser
processes faster than a user could.`,
		Example: `  $ pathway mcp`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(os.Stderr, "pathway MCP server running on stdio")
			return serveMCP(version)
		},
	}
}

func serveMCP(version string) error {
	s := server.NewMCPServer("pathway", version)
	limiter := mcputil.NewRateLimiter(5, 1)

	s.AddTool(
		mcp.NewTool("list_browsers",
			mcp.WithDescription("List the browsers installed on this machine, including release channels and the system default."),
		),
		handleListBrowsers,
	)

	s.AddTool(
		mcp.NewTool("list_profiles",
			mcp.WithDescription("List the profiles a browser declares in its configuration."),
			mcp.WithString("browser", mcp.Required(),
				mcp.Description("Browser name, e.g. chrome, firefox, edge")),
		),
		handleListProfiles,
	)

	s.AddTool(
		mcp.NewTool("open_url",
			mcp.WithDescription("Open one or more URLs in a browser, optionally in a specific profile or window mode."),
			mcp.WithString("urls", mcp.Required(),
				mcp.Description("URL to open; an array opens each URL")),
			mcp.WithString("browser",
				mcp.Description("Browser name; omitted means the system default")),
			mcp.WithString("profile",
				mcp.Description("Named browser profile to open in")),
			mcp.WithBoolean("incognito",
				mcp.Description("Open in a private/incognito window")),
			mcp.WithBoolean("new_window",
				mcp.Description("Open in a new window")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if err := limiter.Check("open_url"); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return handleOpenURL(ctx, request)
		},
	)

	return server.ServeStdio(s)
}

func handleListBrowsers(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	eng := newEngine()

	result := listResult{Browsers: eng.registry.Detect()}
	if def, ok := eng.registry.SystemDefault(); ok {
		result.Default = &def
	}
	return mcputil.MarshalToolResult(result)
}

func handleListProfiles(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := mcputil.GetArgsMap(request)
	name, ok := mcputil.GetStringParam(args, "browser")
	if !ok || name == "" {
		return mcp.NewToolResultError("browser parameter is required"), nil
	}

	eng := newEngine()
	target, err := eng.resolveTarget(name, "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	entries, err := eng.store.List(*target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcputil.MarshalToolResult(profilesResult{Browser: *target, Profiles: entries})
}

func handleOpenURL(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := mcputil.GetArgsMap(request)

	rawURLs, ok := mcputil.GetStringSliceParam(args, "urls")
	if !ok || len(rawURLs) == 0 {
		return mcp.NewToolResultError("urls parameter is required"), nil
	}

	opts := openOptions{}
	opts.browser, _ = mcputil.GetStringParam(args, "browser")
	opts.profile, _ = mcputil.GetStringParam(args, "profile")
	opts.incognito, _ = mcputil.GetBoolParam(args, "incognito")
	opts.newWindow, _ = mcputil.GetBoolParam(args, "new_window")

	eng := newEngine()

	validated := make([]urlutil.Validated, 0, len(rawURLs))
	urls := make([]string, 0, len(rawURLs))
	for _, raw := range rawURLs {
		v, err := urlutil.Validate(raw, eng.fs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		validated = append(validated, v)
		urls = append(urls, v.Normalized)
	}

	target, err := eng.resolveTarget(opts.browser, "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	plan, err := eng.planner.Plan(buildRequest(target, opts, urls))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcomes := launch.NewLauncher().Launch(plan)
	return mcputil.MarshalToolResult(openResult{URLs: validated, Plan: plan, Outcomes: outcomes})
}
