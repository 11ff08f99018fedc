// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the service
// layer's business logic.
//
// Validators never touch storage. Uniqueness, existence and
// ownership are enforced by the services and repositories.
package validators

import "context"

// Validator validates an arbitrary value. Optional field names restrict
// validation to those fields; without them a default set is checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
