// Package handlers implements the REST API for trip monitoring and smart
// search.
package handlers

import (
	"github.com/voalerta/flight-service/internal/amadeus"
	"github.com/voalerta/flight-service/internal/monitor"
	"github.com/voalerta/flight-service/internal/search"
)

var (
	provider *amadeus.Client
	engine   *search.Engine
	checker  *monitor.Checker
)

// Init wires the handler package's collaborators. Called once from main
// before the router starts serving.
func Init(p *amadeus.Client, e *search.Engine, c *monitor.Checker) {
	provider = p
	engine = e
	checker = c
}
