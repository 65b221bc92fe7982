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

// jogadorRequest は選手登録リクエストのJSON構造。
// 年齢はポインタで受け取り、0歳と未指定を区別する。
type jogadorRequest struct {
	// Nome は選手名。
	Nome string `json:"nome"`
	// Idade は選手の年齢。
	Idade *int64 `json:"idade"`
	// Posicao は選手のポジション。
	Posicao string `json:"posicao"`
	// TimeQJoga は所属チーム名。
	TimeQJoga string `json:"time_q_joga"`
}

// validate は必須フィールドがすべて指定されているかを検証する。
func (r jogadorRequest) validate() error {
	if r.Nome == "" || r.Idade == nil || r.Posicao == "" || r.TimeQJoga == "" {
		return errCamposObrigatorios
	}
	return nil
}

// jogadorUpdateRequest は選手更新リクエストのJSON構造。
// 現在の選手名はURLパラメータで受け取り、NovoNomeが更新後の選手名となる。
type jogadorUpdateRequest struct {
	// NovoNome は更新後の選手名。
	NovoNome string `json:"novoNome"`
	// Idade は選手の年齢。
	Idade *int64 `json:"idade"`
	// Posicao は選手のポジション。
	Posicao string `json:"posicao"`
	// TimeQJoga は所属チーム名。
	TimeQJoga string `json:"time_q_joga"`
}

// validate は必須フィールドがすべて指定されているかを検証する。
func (r jogadorUpdateRequest) validate() error {
	if r.NovoNome == "" || r.Idade == nil || r.Posicao == "" || r.TimeQJoga == "" {
		return errCamposObrigatorios
	}
	return nil
}

// handleListJogadores は選手一覧取得を処理するハンドラを返す。
func (s *Server) handleListJogadores() gin.HandlerFunc {
	return func(c *gin.Context) {
		jogadores, err := s.queries.ListJogadores(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("選手一覧取得エラー: %v", err)
			return
		}

		if jogadores == nil {
			jogadores = []campeonatodb.Jogador{}
		}
		c.JSON(http.StatusOK, jogadores)
	}
}

// handleCreateJogador は選手登録を処理するハンドラを返す。
func (s *Server) handleCreateJogador() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req jogadorRequest
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
		if err := s.queries.WithTx(tx).CreateJogador(c.Request.Context(), campeonatodb.CreateJogadorParams{
			ID:        id,
			Nome:      req.Nome,
			Idade:     *req.Idade,
			Posicao:   req.Posicao,
			TimeQJoga: req.TimeQJoga,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("選手登録エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"ids":     []string{id},
			"message": "Jogadore(s) inseridos com sucesso",
		})
	}
}

// handleUpdateJogador は選手更新を処理するハンドラを返す。
// 現在の選手名で存在確認と更新を同一トランザクションで行い、
// 該当選手が無い場合は何も変更せずに404を返す。
func (s *Server) handleUpdateJogador() gin.HandlerFunc {
	return func(c *gin.Context) {
		nome := c.Param("nome")

		var req jogadorUpdateRequest
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

		qtx := s.queries.WithTx(tx)
		if _, err := qtx.GetJogadorByNome(c.Request.Context(), nome); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Jogador não encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("選手取得エラー: %v", err)
			return
		}

		if err := qtx.UpdateJogador(c.Request.Context(), campeonatodb.UpdateJogadorParams{
			NovoNome:  req.NovoNome,
			Idade:     *req.Idade,
			Posicao:   req.Posicao,
			TimeQJoga: req.TimeQJoga,
			Nome:      nome,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("選手更新エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Jogador atualizado com sucesso"})
	}
}

// handleDeleteJogador は選手削除を処理するハンドラを返す。
// 存在確認と削除を同一トランザクションで行い、該当選手が無い場合は
// 何も変更せずに404を返す。
func (s *Server) handleDeleteJogador() gin.HandlerFunc {
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
		if _, err := qtx.GetJogadorByNome(c.Request.Context(), nome); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Jogador não encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("選手取得エラー: %v", err)
			return
		}

		if err := qtx.DeleteJogador(c.Request.Context(), nome); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("選手削除エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Jogador excluído com sucesso"})
	}
}
