// Package api exposes the event search pipeline over HTTP.
//
// GET /events runs fetch, normalize, dedupe, and filter for one search
// and responds with a flat JSON event list. GET /suggest serves
// location autocompletion. Handlers are thin request/response adapters;
// all search semantics live in the ticketmaster, event, classify, and
// filter packages.
package api
