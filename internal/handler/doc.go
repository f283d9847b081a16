// Package handler implements the HTTP surface of flowboard.
//
// FlowHandler serves the diagram REST API: reading the element sequence,
// the connect and remove mutations, reseeding, export and a static render.
// SessionHandler serves the same mutations over a websocket and pushes
// every change made by other clients.
//
// Errors are returned as JSON with an {error, details} body. Domain errors
// map to status codes:
//
//	ErrInvalidEndpoint  400
//	ErrUnknownEndpoint  409
//	ErrDuplicateID      422
//
// Middleware provides panic recovery, CORS and request logging.
package handler
