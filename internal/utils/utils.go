package utils

// context key
type ctxKey string

// CtxUserKey carries the authenticated *models.User through a request.
const CtxUserKey ctxKey = "current_user"
