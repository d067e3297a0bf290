package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:3000/mcp/stream", "MCP streamable HTTP endpoint")
	query := flag.String("query", "go developer", "query for the search_jobs check")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "job-tracker-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	tools := testListTools(ctx, session)

	testTool(ctx, session, "list_jobs", map[string]any{})
	testTool(ctx, session, "board_stats", map[string]any{"by_company": true})
	testTool(ctx, session, "list_referrals", map[string]any{})
	if tools["search_jobs"] {
		testTool(ctx, session, "search_jobs", map[string]any{"query": *query})
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) map[string]bool {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("list tools failed: %v", err)
	}

	names := make(map[string]bool, len(res.Tools))
	for _, tool := range res.Tools {
		names[tool.Name] = true
		fmt.Printf("  %s - %s\n", tool.Name, tool.Description)
	}
	return names
}

func testTool(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\nTEST: %s\n", name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}

	printResult(result)
	if result.IsError {
		fmt.Printf("%s returned a tool error\n", name)
		return
	}
	fmt.Printf("%s passed\n", name)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
