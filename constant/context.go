package constant

type contextKey string

// UserIDKey holds the authenticated user id on the request context.
const UserIDKey contextKey = "user_id"
