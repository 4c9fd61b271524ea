package usecase

import (
	"context"

	"care-platform-api/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorID returns the authenticated admin's ID, or nil for system calls
func actorID(ctx context.Context) *uuid.UUID {
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}

// actorName returns the authenticated admin's email, or "system"
func actorName(ctx context.Context) string {
	if email, ok := middleware.GetUserEmailFromContext(ctx); ok && email != "" {
		return email
	}
	return "system"
}
