// Package cli provides the interactive stockkeeper terminal client.
//
// App renders the current view of the inventory as a table, prompts for
// record fields on add and edit, and forwards every action to
// services.InventoryService. Rows are addressed by their 1-based number in
// the table currently shown.
//
// Recoverable problems (bad input, a row that no longer exists, a failed
// export) are printed as notices and the loop continues. A failure to
// persist the store ends the loop and is returned from App.Run.
//
// The loop is started via App.Run(ctx) and blocks until the user exits or
// input ends. See runREPL for the command list.
package cli
