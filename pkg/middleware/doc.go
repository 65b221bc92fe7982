// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// JWT認証トークンの発行と検証、パニックリカバリ、CORS設定を含む。
// トークンはAuthorizationヘッダーの値をそのまま使用する点に注意
// （Bearer接頭辞は付けない）。
package middleware
