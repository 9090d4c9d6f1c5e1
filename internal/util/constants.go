package util

// 错误码，随 HTTP 状态一起返回
const (
	CodeInvalidBody        = "INVALID_BODY"
	CodeEmptyContent       = "EMPTY_CONTENT"
	CodeContentTooLong     = "CONTENT_TOO_LONG"
	CodeInvalidID          = "INVALID_ID"
	CodeInvalidReaction    = "INVALID_REACTION"
	CodeInvalidAction      = "INVALID_ACTION"
	CodeSelfFollow         = "SELF_FOLLOW"
	CodeSelfRequest        = "SELF_REQUEST"
	CodeSelfMessage        = "SELF_MESSAGE"
	CodeCannotRepostOwn    = "CANNOT_REPOST_OWN"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeDuplicateRepost    = "DUPLICATE_REPOST"
	CodeRequestClosed      = "REQUEST_CLOSED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// 内容长度上限
const (
	MaxEntryContentLen   = 2000
	MaxReplyContentLen   = 1000
	MaxMessageContentLen = 2000
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const MimeImage = "image/"
