// Package cli implements the interactive myGaadi terminal client: a small
// REPL over the session manager, entity store, alert notifier, file storage
// and assistant client.
package cli
