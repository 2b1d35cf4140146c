package api

import (
	"context"
)

type keyType string

const adminSubjectKey keyType = "adminSubject"

// ctxWithAdminSubject records which admin issued the mutating request.
func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

func ctxAdminSubject(ctx context.Context) string {
	if subject, ok := ctx.Value(adminSubjectKey).(string); ok {
		return subject
	}
	return ""
}
