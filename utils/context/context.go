package context

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
)

func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
