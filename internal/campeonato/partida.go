package campeonato

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	campeonatodb "github.com/nao1215/campeonato/internal/campeonato/db"
)

// errCamposObrigatorios は必須フィールドが欠けている場合の検証エラー。
var errCamposObrigatorios = errors.New("Todos os campos são obrigatórios!")

// partidaRequest は試合の登録・更新リクエストのJSON構造。
// 得点はポインタで受け取り、0点と未指定を区別する。
type partidaRequest struct {
	// Data は試合の開催日。
	Data string `json:"data"`
	// TimeCasa はホームチーム名。
	TimeCasa string `json:"time_casa"`
	// TimeVisitante はアウェイチーム名。
	TimeVisitante string `json:"time_visitante"`
	// PlacarCasa はホームチームの得点。
	PlacarCasa *int64 `json:"placar_casa"`
	// PlacarVisitante はアウェイチームの得点。
	PlacarVisitante *int64 `json:"placar_visitante"`
}

// validate は必須フィールドがすべて指定されているかを検証する。
func (r partidaRequest) validate() error {
	if r.Data == "" || r.TimeCasa == "" || r.TimeVisitante == "" ||
		r.PlacarCasa == nil || r.PlacarVisitante == nil {
		return errCamposObrigatorios
	}
	return nil
}

// parsePartidaRequests はリクエストボディを試合リクエストのスライスに解釈する。
// ボディは単体オブジェクトとオブジェクト配列のどちらでもよい。
func parsePartidaRequests(body io.Reader) ([]partidaRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var reqs []partidaRequest
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			return nil, err
		}
		return reqs, nil
	}

	var req partidaRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, err
	}
	return []partidaRequest{req}, nil
}

// handleListPartidas は試合一覧取得を処理するハンドラを返す。
func (s *Server) handleListPartidas() gin.HandlerFunc {
	return func(c *gin.Context) {
		partidas, err := s.queries.ListPartidas(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("試合一覧取得エラー: %v", err)
			return
		}

		if partidas == nil {
			partidas = []campeonatodb.Partida{}
		}
		c.JSON(http.StatusOK, partidas)
	}
}

// handleCreatePartidas は試合登録を処理するハンドラを返す。
// 1件でも検証に失敗した場合は挿入を一切行わず、全件を
// 同一トランザクションで挿入して生成したIDを返す。
func (s *Server) handleCreatePartidas() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqs, err := parsePartidaRequests(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
			return
		}
		if len(reqs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "O corpo da requisição deve conter pelo menos um objeto de partida",
			})
			return
		}
		for _, req := range reqs {
			if err := req.validate(); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		qtx := s.queries.WithTx(tx)
		ids := make([]string, 0, len(reqs))
		for _, req := range reqs {
			id := uuid.New().String()
			if err := qtx.CreatePartida(c.Request.Context(), campeonatodb.CreatePartidaParams{
				ID:              id,
				Data:            req.Data,
				TimeCasa:        req.TimeCasa,
				TimeVisitante:   req.TimeVisitante,
				PlacarCasa:      *req.PlacarCasa,
				PlacarVisitante: *req.PlacarVisitante,
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
				log.Printf("試合登録エラー: %v", err)
				return
			}
			ids = append(ids, id)
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"ids":     ids,
			"message": "Partida(s) inseridas com sucesso",
		})
	}
}

// handleUpdatePartida は試合更新を処理するハンドラを返す。
// 存在確認と更新を同一トランザクションで行い、該当IDが無い場合は
// 何も変更せずに404を返す。
func (s *Server) handleUpdatePartida() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req partidaRequest
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
		if _, err := qtx.GetPartidaByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Partida não encontrada"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("試合取得エラー: %v", err)
			return
		}

		if err := qtx.UpdatePartida(c.Request.Context(), campeonatodb.UpdatePartidaParams{
			Data:            req.Data,
			TimeCasa:        req.TimeCasa,
			TimeVisitante:   req.TimeVisitante,
			PlacarCasa:      *req.PlacarCasa,
			PlacarVisitante: *req.PlacarVisitante,
			ID:              id,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("試合更新エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Partida atualizada com sucesso"})
	}
}

// handleDeletePartida は試合削除を処理するハンドラを返す。
// 存在確認と削除を同一トランザクションで行い、該当IDが無い場合は
// 何も変更せずに404を返す。
func (s *Server) handleDeletePartida() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback() //nolint:errcheck

		qtx := s.queries.WithTx(tx)
		if _, err := qtx.GetPartidaByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Partida não encontrada"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("試合取得エラー: %v", err)
			return
		}

		if err := qtx.DeletePartida(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("試合削除エラー: %v", err)
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Partida excluída com sucesso"})
	}
}
