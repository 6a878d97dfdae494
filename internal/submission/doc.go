// Package submission runs one form submission through validation,
// notification composition and dispatch.
//
// Every supported form shares the same pipeline. What differs per [Kind] is
// the typed [Form] record, its validation rules, its admin sections and the
// catalog copy (subjects, next steps, processing notes) loaded from markdown
// files with YAML front matter.
//
// The [Orchestrator] sequences the work for a request:
//
//	decode envelope -> validate -> compose admin notice -> render -> dispatch
//	                            -> compose confirmations -> render -> dispatch
//
// It stops before any dispatch when the envelope or the fields are invalid,
// never sends confirmations when the admin notice fails, and attempts each
// confirmation independently of the others.
package submission
