// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches the services.
//
// CaseValidator covers case create and update bodies, CredentialsValidator
// covers signup and login, and FileValidator covers uploads. Failures are
// the sentinel errors in errors.go, which the HTTP layer turns into
// client-facing messages.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are
// checked, which is how partial case updates are validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
