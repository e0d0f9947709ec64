// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming snapshot and blob writes before they
// reach the store.
//
// A Validator accepts any supported value and an optional list of field
// names. With no field names every rule for the value's type is applied;
// otherwise only the named rules run, in the given order.
package validators

import "context"

// Validator validates arbitrary input values, optionally scoped to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
