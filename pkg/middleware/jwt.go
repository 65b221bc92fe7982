package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims はJWTトークンのクレーム（ペイロード）を表す。
// ログイン済みユーザー名を保護ルートへ伝播するために使用する。
type JWTClaims struct {
	jwt.RegisteredClaims
	// Username はログインに成功したユーザー名。
	Username string `json:"username"`
}

// tokenExpiry はトークンの有効期間。発行から1時間で失効する。
const tokenExpiry = time.Hour

// GenerateJWT はユーザー名からJWTトークンを生成する。
// ログインエンドポイントが認証成功後に呼び出す。
func GenerateJWT(secret, username string) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "campeonato-api",
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// JWTAuth はJWTトークンを検証するGinミドルウェアを返す。
// Authorizationヘッダーの値をそのままトークンとして扱う（Bearer接頭辞なし）。
// ヘッダーが無い場合は401、署名不正や期限切れの場合は403を返す。
// 検証に成功した場合、コンテキストに "username" を設定する。
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token de autenticação não fornecido",
			})
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Token inválido ou expirado",
			})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// GetUsername はGinコンテキストからユーザー名を取得する。
// JWTAuthミドルウェアが事前に適用されている必要がある。
func GetUsername(c *gin.Context) string {
	username, _ := c.Get("username")
	if name, ok := username.(string); ok {
		return name
	}
	return ""
}
