// Package errors provides the shared error constructors used by every
// texttype module.
//
// Package: errors
// Title: Standardized Module Errors
// Description: Builds *mdwerror.Error values with a consistent message,
//              code and detail layout. Modules call InvalidInput,
//              InvalidFormat, ValidationFailed or NotFound
//              instead of fmt.Errorf so callers can branch on codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Every error built here carries the "module" detail and, when known, the
// "operation" detail:
//
//	err := errors.InvalidInput(errors.ModuleTextValue, "explode", "", "non-empty separator")
//	errors.ExtractModule(err)    // "textvalue"
//	errors.ExtractOperation(err) // "explode"
package errors
