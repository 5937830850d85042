// Package error provides the structured error type used across texttype.
//
// Package: error
// Title: texttype Error Handling
// Description: Implements a coded, severity-tagged error with contextual
//              details. Errors stay compatible with the standard error
//              interface and with errors.Is / errors.As through Unwrap.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//   import mdwerror "github.com/msto63/texttype/core/error"
//
//   err := mdwerror.New("separator must not be empty").
//     WithCode(mdwerror.CodeInvalidInput).
//     WithOperation("textvalue.explode").
//     WithDetail("separator", "")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//     // caller passed bad input
//   }
package error
