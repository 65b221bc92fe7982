package campeonato

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	campeonatodb "github.com/nao1215/campeonato/internal/campeonato/db"
)

// timeRequest はチーム登録リクエストのJSON構造。
type timeRequest struct {
	// Nome はチーム名。
	Nome string `json:"nome"`
	// LogoURL はチームロゴ画像のURL。
	LogoURL string `json:"logo_url"`
}

// validate は必須フィールドがすべて指定されているかを検証する。
func (r timeRequest) validate() error {
	if r.Nome == "" || r.LogoURL == "" {
		return errCamposObrigatorios
	}
	return nil
}

// timeUpdateRequest はチーム更新リクエストのJSON構造。
// 更新できるのはロゴURLのみ。
type timeUpdateRequest struct {
	// LogoURL はチームロゴ画像のURL。
	LogoURL string `json:"logo_url"`
}

// handleListTimes はチーム一覧取得を処理するハンドラを返す。
func (s *Server) handleListTimes() gin.HandlerFunc {
	return func(c *gin.Context) {
		times, err := s.queries.ListTimes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("チーム一覧取得エラー: %v", err)
			return
		}

		if times == nil {
			times = []campeonatodb.Time{}
		}
		c.JSON(http.StatusOK, times)
	}
}

// handleCreateTime はチーム登録を処理するハンドラを返す。
func (s *Server) handleCreateTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req timeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
			return
		}
		if err := req.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		id := uuid.New().String()
		if err := s.queries.WithTx(tx).CreateTime(c.Request.Context(), campeonatodb.CreateTimeParams{
			ID:      id,
			Nome:    req.Nome,
			LogoURL: req.LogoURL,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("チーム登録エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"ids":     []string{id},
			"message": "Time(s) inseridos com sucesso",
		})
	}
}

// handleUpdateTime はチームのロゴURL更新を処理するハンドラを返す。
// チーム名で存在確認と更新を同一トランザクションで行い、
// 該当チームが無い場合は何も変更せずに404を返す。
func (s *Server) handleUpdateTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		nome := c.Param("nome")

		var req timeUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
			return
		}
		if req.LogoURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A URL do logo deve ser preenchida"})
			return
		}

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		qtx := s.queries.WithTx(tx)
		if _, err := qtx.GetTimeByNome(c.Request.Context(), nome); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Time não encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("チーム取得エラー: %v", err)
			return
		}

		if err := qtx.UpdateTimeLogoURL(c.Request.Context(), campeonatodb.UpdateTimeLogoURLParams{
			LogoURL: req.LogoURL,
			Nome:    nome,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("チーム更新エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "URL do logo do time atualizada com sucesso"})
	}
}

// handleDeleteTime はチーム削除を処理するハンドラを返す。
// 存在確認と削除を同一トランザクションで行い、該当チームが無い場合は
// 何も変更せずに404を返す。
func (s *Server) handleDeleteTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		nome := c.Param("nome")

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		qtx := s.queries.WithTx(tx)
		if _, err := qtx.GetTimeByNome(c.Request.Context(), nome); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Time não encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("チーム取得エラー: %v", err)
			return
		}

		if err := qtx.DeleteTime(c.Request.Context(), nome); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("チーム削除エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Time excluído com sucesso"})
	}
}
