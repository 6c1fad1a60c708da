package common

const (
	// MaxRequestBody limits JSON request bodies.
	MaxRequestBody = 1 << 20

	MessageMissingAuth    = "Authorization ヘッダーがありません"
	MessageServerError    = "サーバーエラーが発生しました"
	MessageInvalidJSON    = "リクエストの形式が不正です"
	MessageForbiddenUser  = "他のユーザーの回答にはアクセスできません"
	MessageAdminOnly      = "管理者のみ利用できます"
	MessageMethodNotAllow = "Method not allowed"
)
