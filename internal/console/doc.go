// Package console implements the admin console: a bubbletea (Elm
// architecture) terminal UI over the product service, plus the CRUD
// orchestrator that keeps the view-local product store consistent
// with the server.
//
// The orchestrator is independent of the TUI: it talks to the service
// through the [Client] interface, mutates the [store.Store], and
// reports outcomes as toasts through the [Notifier]. The TUI
// subscribes to the notifier and renders whatever arrives; tests drive
// the orchestrator directly with fake clients.
//
// Data flow:
//
//	[product service]
//	        | (Client interface)
//	  [Orchestrator] -> [store.Store]
//	        | (Notifier / event bus)
//	     [Model] <- bubbletea event loop
//	        |
//	  [terminal output]
package console
