// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the notes platform as tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aruales/apuntes/internal/commentservice"
	"github.com/aruales/apuntes/internal/noteservice"
)

// Server wraps the MCP server with the platform's tools.
type Server struct {
	mcp      *server.MCPServer
	notes    *noteservice.Service
	comments *commentservice.Service
}

// New creates a new MCP server with all tools registered.
func New(notes *noteservice.Service, comments *commentservice.Service) *Server {
	s := &Server{notes: notes, comments: comments}

	s.mcp = server.NewMCPServer(
		"Apuntes",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List all note categories with their note counts."),
	), s.listCategories)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Search notes by a case-insensitive substring of the title."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text to search for in note titles")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("get_note",
		mcp.WithDescription("Fetch a single note by its numeric id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id")),
	), s.getNote)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note in a category. The category is created if it does not exist."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Note title (min 3 chars)")),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category name (exact key match)")),
		mcp.WithString("author", mcp.Required(), mcp.Description("Author name")),
		mcp.WithString("preview", mcp.Required(), mcp.Description("Preview text (min 10 chars)")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("list_comments",
		mcp.WithDescription("List the comments of a note."),
		mcp.WithNumber("note_id", mcp.Required(), mcp.Description("Note id")),
	), s.listComments)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.notes.ListCategories(ctx), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res := s.notes.SearchNotes(ctx, query)
	out, _ := json.MarshalIndent(res.Notes, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.notes.NoteByID(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("note not found: %d", id)), nil
	}
	out, _ := json.MarshalIndent(note, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	author, err := req.RequireString("author")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	preview, err := req.RequireString("preview")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := s.notes.CreateNote(ctx, title, category, author, preview)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) listComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := req.RequireInt("note_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	comments, err := s.comments.CommentsForNote(ctx, noteID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("note not found: %d", noteID)), nil
	}
	out, _ := json.MarshalIndent(comments, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
