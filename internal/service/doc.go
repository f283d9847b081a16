// Package service implements the business logic of flowboard.
//
// FlowService sits between the HTTP layer and the element store. It applies
// the connect and remove mutations, reseeds the diagram, exports the current
// sequence, and renders static snapshots.
//
// # Event System
//
// Every successful mutation is published on the EventBus with the new
// revision and the full element sequence, so a subscriber can re-render
// without asking for the state again. The SSE hub is the main subscriber.
package service
