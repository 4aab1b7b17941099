package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_NOT_FOUND       = "error.notfound"
	ERROR_INVALIDARGUMENT = "error.invalidargument"

	ERROR_UNAUTHORIZED      = "error.unauthorized"
	ERROR_PERMISSION_DENIED = "error.permission.denied"
	ERROR_FORBIDDEN         = "error.forbidden"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"
	ERROR_MORE_THAN_MAX     = "error.moreThanMax"
	ERROR_EXIST             = "error.exist"

	ERROR_INVALID_TOKEN          = "error.invalid.token"
	ERROR_INVALID_ACCOUNT        = "error.invalid.account"
	ERROR_EMAIL_ALREADY_REGISTED = "error.email_has_already_registed"
	ERROR_ACCOUNT_PENDING_REVIEW = "error.account.pending_review"
	ERROR_ACCOUNT_REJECTED       = "error.account.rejected"
	ERROR_USER_NOT_PENDING       = "error.user.not_pending"
	ERROR_WORKSPACE_NOT_FOUND    = "error.workspace.notfound"
	ERROR_DOCUMENT_NOT_FOUND     = "error.document.notfound"
	ERROR_QUESTION_TOO_SHORT     = "error.question.too_short"
	ERROR_UNSUPPORTED_FILE_TYPE  = "error.file.type.unsupport"
	ERROR_FILE_READ_FAIL         = "error.file.read_fail"
	ERROR_AI_SERVICE_UNAVAILABLE = "error.ai.service.unavailable"
	ERROR_AI_CONTEXT_OVER_LIMIT  = "error.ai.context.over_limit"
)
