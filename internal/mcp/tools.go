package mcp

import "github.com/mark3labs/mcp-go/mcp"

// shareToolDef describes the link_share tool.
var shareToolDef = mcp.NewTool("link_share",
	mcp.WithDescription("Encode text into a self-contained shareable link. The full payload lives in the link's URL fragment; nothing is uploaded anywhere. Returns the token, the full link, and a history entry id."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The text to share. Must not be empty or whitespace-only."),
	),
	mcp.WithString("base_url",
		mcp.Description("Base URL for the generated link. Defaults to the configured base_url."),
	),
)

// resolveToolDef describes the link_resolve tool.
var resolveToolDef = mcp.NewTool("link_resolve",
	mcp.WithDescription("Decode a linklet link (or bare token) back into its original text. Malformed tokens fail with DECODE_FAILED rather than returning garbage."),
	mcp.WithString("target",
		mcp.Required(),
		mcp.Description("A full link (https://...#token) or a bare token."),
	),
)

// historyToolDef describes the link_history tool.
var historyToolDef = mcp.NewTool("link_history",
	mcp.WithDescription("List recently generated links, most recent first. At most 5 entries are kept."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum entries to return. 0 or omitted returns all."),
	),
)

// clearToolDef describes the link_clear tool.
var clearToolDef = mcp.NewTool("link_clear",
	mcp.WithDescription("Remove all recent-link history entries."),
)
