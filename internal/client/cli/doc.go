// Package cli implements the interactive Rapihin client: a small REPL that
// drives registration/login, file staging, formatting submissions, and
// history browsing against the formatting service.
//
// The REPL loop (see runREPL) dispatches to command handlers on App. Input
// and output go through test seams (printlnFn, getSimpleText, getPassword,
// chooseOption) so command handlers can be exercised without a terminal.
package cli
