// Package bcd plans, applies, and checks edits to a Windows boot
// configuration store so an installed OS boots from removable media.
//
// The store is only ever reached through the external configuration tool
// (bcdedit), treated as text in and text out. Planning is pure; execution,
// validation, and entry creation are built on Executor, which never returns
// an error and instead reports each invocation as a Result. Orchestrator is
// the single place where a sequence of results becomes success or failure.
package bcd
