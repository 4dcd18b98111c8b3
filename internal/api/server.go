package api

import (
	"net/http"
	"time"

	"github.com/solarcodion/code-challenge/internal/resource"
)

// NewServer creates an HTTP server with all routes configured. The
// resource routes are registered only when a resource service is
// available (a database is configured).
func NewServer(port string, tokens TokenSource, resources *resource.Service) *http.Server {
	handler := NewHandler(tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/tokens", handler.GetTokens)
	mux.HandleFunc("GET /api/v1/quote", handler.GetQuote)

	if resources != nil {
		resHandler := NewResourceHandler(resources)
		mux.HandleFunc("GET /api/v1/resources", resHandler.ListResources)
		mux.HandleFunc("POST /api/v1/resources", resHandler.CreateResource)
		mux.HandleFunc("GET /api/v1/resources/{id}", resHandler.GetResource)
		mux.HandleFunc("PUT /api/v1/resources/{id}", resHandler.UpdateResource)
		mux.HandleFunc("DELETE /api/v1/resources/{id}", resHandler.DeleteResource)
	}

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
