package campeonato

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	campeonatodb "github.com/nao1215/campeonato/internal/campeonato/db"
	"github.com/nao1215/campeonato/pkg/middleware"
)

// loginRequest はログインリクエストのJSON構造。
type loginRequest struct {
	// Username はログインユーザー名。
	Username string `json:"username"`
	// Password はログインパスワード。
	Password string `json:"password"`
}

// handleLogin はログインを処理するハンドラを返す。
// usuariosテーブルとの完全一致で認証し、成功時にJWTトークンを発行する。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios!"})
			return
		}
		if req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios!"})
			return
		}

		usuario, err := s.queries.GetUsuarioByCredentials(c.Request.Context(), campeonatodb.GetUsuarioByCredentialsParams{
			Username: req.Username,
			Password: req.Password,
		})
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("ログインエラー: %v", err)
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, usuario.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("JWT生成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
