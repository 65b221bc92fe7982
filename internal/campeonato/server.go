package campeonato

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	campeonatodb "github.com/nao1215/campeonato/internal/campeonato/db"
	"github.com/nao1215/campeonato/pkg/middleware"
)

// Server は選手権APIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はクエリ実行オブジェクト。
	queries *campeonatodb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
}

// NewServer は新しい選手権APIサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行い、環境変数に
// 管理ユーザーが設定されていればログインユーザーを初期投入する。
func NewServer(port string) (*Server, error) {
	dsn := getEnvOr("CAMPEONATO_DB", "/data/campeonato.db?_journal_mode=WAL&_busy_timeout=5000")
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-key"
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(allowedOrigins()))

	s := &Server{
		router:    router,
		port:      port,
		queries:   campeonatodb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: jwtSecret,
	}

	if err := s.seedAdminUsuario(context.Background()); err != nil {
		return nil, fmt.Errorf("管理ユーザーの初期投入に失敗: %w", err)
	}

	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// ログイン（認証不要）
	s.router.POST("/login", s.handleLogin())

	// 認証必須のリソースエンドポイント
	protected := s.router.Group("/")
	protected.Use(middleware.JWTAuth(s.jwtSecret))
	{
		partidas := protected.Group("/partidas")
		{
			// 試合一覧取得
			partidas.GET("", s.handleListPartidas())
			// 試合登録（単体または複数）
			partidas.POST("", s.handleCreatePartidas())
			// 試合更新（ID指定・全フィールド）
			partidas.PUT("/:id", s.handleUpdatePartida())
			// 試合削除（ID指定）
			partidas.DELETE("/:id", s.handleDeletePartida())
		}

		jogadores := protected.Group("/jogadores")
		{
			// 選手一覧取得
			jogadores.GET("", s.handleListJogadores())
			// 選手登録
			jogadores.POST("", s.handleCreateJogador())
			// 選手更新（現在の選手名指定・改名可）
			jogadores.PUT("/:nome", s.handleUpdateJogador())
			// 選手削除（選手名指定）
			jogadores.DELETE("/:nome", s.handleDeleteJogador())
		}

		times := protected.Group("/times")
		{
			// チーム一覧取得
			times.GET("", s.handleListTimes())
			// チーム登録
			times.POST("", s.handleCreateTime())
			// チーム更新（チーム名指定・ロゴURLのみ）
			times.PUT("/:nome", s.handleUpdateTime())
			// チーム削除（チーム名指定）
			times.DELETE("/:nome", s.handleDeleteTime())
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "campeonato"})
	})
}

// seedAdminUsuario は環境変数ADMIN_USERNAME/ADMIN_PASSWORDが両方設定されて
// いる場合に、該当ユーザー名のログインユーザーが存在しなければ作成する。
// 空のデータベースでもログイン可能にするための初期投入処理。
func (s *Server) seedAdminUsuario(ctx context.Context) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	_, err := s.queries.GetUsuarioByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if err := s.queries.CreateUsuario(ctx, campeonatodb.CreateUsuarioParams{
		ID:       uuid.New().String(),
		Username: username,
		Password: password,
	}); err != nil {
		return err
	}
	log.Printf("管理ユーザー %s を作成しました", username)
	return nil
}

// allowedOrigins は環境変数FRONTEND_URLからCORSの許可オリジンを組み立てる。
// 未設定の場合は空を返し、すべてのオリジンを許可する。
func allowedOrigins() []string {
	v := os.Getenv("FRONTEND_URL")
	if v == "" {
		return nil
	}

	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
