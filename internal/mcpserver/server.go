// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the Quill note operations as tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/quill/internal/apperr"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/noteservice"
)

// Server wraps the MCP server with Quill tools.
type Server struct {
	mcp *server.MCPServer
	svc *noteservice.Service
}

// New creates a new MCP server with all Quill tools registered.
func New(svc *noteservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Quill",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes, newest first, as a JSON array."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a note. At least one of title or content must be non-empty."),
		mcp.WithString("title", mcp.Description("Note title")),
		mcp.WithString("content", mcp.Description("Note body text")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Permanently delete a note by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Note id as returned by list_notes or create_note")),
	), s.deleteNote)

	s.mcp.AddTool(mcp.NewTool("summarize_note",
		mcp.WithDescription("Summarize arbitrary note text in one or two sentences. Nothing is stored."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Text to summarize")),
	), s.summarizeNote)

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

func (s *Server) listNotes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.svc.ListNotes(ctx)
	if err != nil {
		return mcp.NewToolResultError("failed to fetch notes"), nil
	}
	out, _ := json.MarshalIndent(notes, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	draft := models.NoteDraft{
		Title:   req.GetString("title", ""),
		Content: req.GetString("content", ""),
	}
	note, err := s.svc.CreateNote(ctx, draft)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return mcp.NewToolResultError("note cannot be empty"), nil
		}
		return mcp.NewToolResultError("failed to create note"), nil
	}
	out, _ := json.MarshalIndent(note, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("note not found: %s", id)), nil
		}
		return mcp.NewToolResultError("failed to delete note"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %s", id)), nil
}

func (s *Server) summarizeNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	summary, err := s.svc.Summarize(ctx, content)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotConfigured):
			return mcp.NewToolResultError("AI API key is not configured"), nil
		default:
			return mcp.NewToolResultError("failed to generate summary"), nil
		}
	}
	return mcp.NewToolResultText(summary), nil
}
