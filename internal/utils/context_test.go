// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vault-sync/models"
)

func TestIdentityCtxKey(t *testing.T) {
	assert.Equal(t, "identity", IdentityCtxKey.String())
}

func TestGetIdentityFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   models.Identity
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    WithIdentity(context.Background(), models.Identity{OwnerID: "owner-1", UserID: "42"}),
			want:   models.Identity{OwnerID: "owner-1", UserID: "42"},
			wantOK: true,
		},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), IdentityCtxKey, "owner-1")},
		{name: "empty owner", ctx: WithIdentity(context.Background(), models.Identity{UserID: "42"})},
		{name: "different key", ctx: context.WithValue(context.Background(), contextKey("other"), models.Identity{OwnerID: "x"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetIdentityFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
