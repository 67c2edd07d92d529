// Copyright 2026 PatchworkMCP. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package mcp provides a minimal HTTP tool host. It exists so the feedback
// drop-in has an in-repo server to register into; servers built on a full
// MCP framework should use pkg/mcpgo instead.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
)

// Server serves registered tools over HTTP.
type Server struct {
	address    string
	tools      map[string]*ToolHandler
	mu         sync.RWMutex
	serverInfo *ServerInfo
	logger     zerolog.Logger
	httpServer *http.Server
}

// Tool describes a callable tool exposed to agents.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
}

// ToolHandler pairs a tool definition with its call function.
type ToolHandler struct {
	Tool     *Tool
	CallFunc func(ctx context.Context, name string, args map[string]any) (*ToolResult, error)
}

// ToolResult is the content returned from a tool call.
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError"`
}

// Content is a single content block in a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ServerInfo holds server metadata.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewTextResult wraps a plain string in a tool result.
func NewTextResult(text string) *ToolResult {
	return &ToolResult{
		Content: []Content{{Type: "text", Text: text}},
	}
}

// NewServer creates a tool host listening on address.
func NewServer(address string, logger zerolog.Logger) *Server {
	return &Server{
		address: address,
		tools:   make(map[string]*ToolHandler),
		serverInfo: &ServerInfo{
			Name:    "patchworkmcp",
			Version: "1.0.0",
		},
		logger: logger,
	}
}

// SetServerInfo sets the advertised server name and version.
func (s *Server) SetServerInfo(name, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverInfo.Name = name
	s.serverInfo.Version = version
}

// Name returns the advertised server name.
func (s *Server) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serverInfo.Name
}

// RegisterTool registers a tool handler under its tool name.
func (s *Server) RegisterTool(handler *ToolHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools[handler.Tool.Name] = handler
}

// ListTools returns the registered tool definitions.
func (s *Server) ListTools() []*Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]*Tool, 0, len(s.tools))
	for _, handler := range s.tools {
		tools = append(tools, handler.Tool)
	}
	return tools
}

// Handler returns the HTTP handler serving the tool endpoints. Exposed for
// tests and for embedding in an existing mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1", s.handleInfo)
	mux.HandleFunc("/v1/tools/list", s.handleToolList)
	mux.HandleFunc("/v1/tools/call", s.handleToolCall)
	return mux
}

// Start starts the server and blocks until ctx is cancelled or the listener
// fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info().Str("address", s.address).Msg("tool host listening")

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return s.httpServer.Shutdown(context.Background())
	}
}

// Stop stops the server.
func (s *Server) Stop() error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.writeResponse(w, map[string]any{
		"name":    s.serverInfo.Name,
		"version": s.serverInfo.Version,
		"capabilities": map[string]bool{
			"tools": true,
		},
	})
}

func (s *Server) handleToolList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeResponse(w, map[string]any{
		"tools": s.ListTools(),
	})
}

func (s *Server) handleToolCall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, -32700, "parse error")
		return
	}

	s.mu.RLock()
	handler, ok := s.tools[req.Name]
	s.mu.RUnlock()

	if !ok {
		s.writeError(w, -32601, "tool not found")
		return
	}

	result, err := handler.CallFunc(r.Context(), req.Name, req.Arguments)
	if err != nil {
		s.logger.Error().Err(err).Str("tool", req.Name).Msg("tool call failed")
		s.writeError(w, -32603, fmt.Sprintf("call failed: %v", err))
		return
	}

	s.writeResponse(w, result)
}

func (s *Server) writeResponse(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"result":  result,
	})
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
