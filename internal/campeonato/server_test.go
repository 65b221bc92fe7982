package campeonato

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	campeonatodb "github.com/nao1215/campeonato/internal/campeonato/db"
	"github.com/nao1215/campeonato/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testSecret はテスト用のJWTシークレット。
const testSecret = "test-secret-key-for-unit-tests"

// setupTestServer はテスト用の選手権APIサーバーをインメモリSQLiteで構築する。
// ルーティングは本番同様にJWTミドルウェア込みで設定する。
func setupTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("インメモリDBの作成に失敗: %v", err)
	}
	// インメモリデータベースは接続ごとに独立するため、接続を1本に固定する
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := initSchema(sqlDB); err != nil {
		t.Fatalf("スキーマ初期化に失敗: %v", err)
	}

	router := gin.New()
	s := &Server{
		router:    router,
		port:      "0",
		queries:   campeonatodb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: testSecret,
	}
	s.setupRoutes()

	return s, router
}

// testToken はテスト用の有効なJWTトークンを発行するヘルパー関数。
func testToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateJWT(testSecret, "admin")
	if err != nil {
		t.Fatalf("テスト用トークンの生成に失敗: %v", err)
	}
	return token
}

// createTestUsuario はテスト用にログインユーザーをDBに直接挿入するヘルパー関数。
func createTestUsuario(t *testing.T, s *Server, username, password string) {
	t.Helper()
	err := s.queries.CreateUsuario(context.Background(), campeonatodb.CreateUsuarioParams{
		ID:       uuid.New().String(),
		Username: username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("テスト用ユーザーの作成に失敗: %v", err)
	}
}

// doRequest はテスト用のHTTPリクエストを実行し、レスポンスを返すヘルパー関数。
// tokenが空でない場合はAuthorizationヘッダーにそのまま設定する。
func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewReader(jsonBytes)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseJSON はレスポンスボディをmapにデコードするヘルパー関数。
func parseJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSONのデコードに失敗: %v, body=%s", err, w.Body.String())
	}
	return result
}

// parseJSONArray はレスポンスボディをスライスにデコードするヘルパー関数。
func parseJSONArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var result []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON配列のデコードに失敗: %v, body=%s", err, w.Body.String())
	}
	return result
}

// TestHealthCheck はヘルスチェックエンドポイントの正常動作を検証する。
func TestHealthCheck(t *testing.T) {
	t.Parallel()

	_, router := setupTestServer(t)

	w := doRequest(router, http.MethodGet, "/health", "", nil)

	if w.Code != http.StatusOK {
		t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
	}

	result := parseJSON(t, w)
	if result["status"] != "ok" {
		t.Errorf("status: got %v, want ok", result["status"])
	}
	if result["service"] != "campeonato" {
		t.Errorf("service: got %v, want campeonato", result["service"])
	}
}

// TestHandleLogin はログインハンドラのテスト。
func TestHandleLogin(t *testing.T) {
	t.Parallel()

	t.Run("正しい資格情報でトークンが発行されること", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUsuario(t, s, "a", "b")

		body := map[string]string{"username": "a", "password": "b"}
		w := doRequest(router, http.MethodPost, "/login", "", body)

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		result := parseJSON(t, w)
		tokenStr, ok := result["token"].(string)
		if !ok || tokenStr == "" {
			t.Fatalf("tokenが空です: %v", result["token"])
		}

		// トークンをデコードし、クレームが送信したユーザー名と一致すること
		claims := &middleware.JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("発行されたトークンの検証に失敗: %v", err)
		}
		if claims.Username != "a" {
			t.Errorf("username claim: got %q, want %q", claims.Username, "a")
		}
	})

	t.Run("usernameが未指定の場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{"password": "b"}
		w := doRequest(router, http.MethodPost, "/login", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("passwordが未指定の場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{"username": "a"}
		w := doRequest(router, http.MethodPost, "/login", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("一致するユーザーが存在しない場合はUnauthorized", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUsuario(t, s, "a", "b")

		body := map[string]string{"username": "a", "password": "wrong"}
		w := doRequest(router, http.MethodPost, "/login", "", body)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}

		result := parseJSON(t, w)
		if result["token"] != nil {
			t.Errorf("トークンが発行されるべきではない: %v", result["token"])
		}
	})
}

// TestProtectedRoutes は保護ルートの認証ゲートを検証する。
func TestProtectedRoutes(t *testing.T) {
	t.Parallel()

	t.Run("トークン無しの場合は401が返ること", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodGet, "/partidas", "", nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("不正なトークンの場合は403が返ること", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodGet, "/jogadores", "not-a-valid-token", nil)

		if w.Code != http.StatusForbidden {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusForbidden)
		}
	})

	t.Run("有効なトークンでアクセスできること", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodGet, "/times", testToken(t), nil)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}
	})
}

// TestSeedAdminUsuario は管理ユーザーの初期投入を検証する。
func TestSeedAdminUsuario(t *testing.T) {
	t.Run("環境変数が設定されている場合にユーザーが作成されること", func(t *testing.T) {
		s, _ := setupTestServer(t)

		t.Setenv("ADMIN_USERNAME", "admin")
		t.Setenv("ADMIN_PASSWORD", "secret")

		if err := s.seedAdminUsuario(context.Background()); err != nil {
			t.Fatalf("seedAdminUsuario()でエラーが発生: %v", err)
		}

		u, err := s.queries.GetUsuarioByUsername(context.Background(), "admin")
		if err != nil {
			t.Fatalf("初期投入ユーザーの取得に失敗: %v", err)
		}
		if u.Password != "secret" {
			t.Errorf("password: got %q, want %q", u.Password, "secret")
		}
	})

	t.Run("同じユーザーが既に存在する場合は再作成しないこと", func(t *testing.T) {
		s, _ := setupTestServer(t)

		createTestUsuario(t, s, "admin", "original")

		t.Setenv("ADMIN_USERNAME", "admin")
		t.Setenv("ADMIN_PASSWORD", "changed")

		if err := s.seedAdminUsuario(context.Background()); err != nil {
			t.Fatalf("seedAdminUsuario()でエラーが発生: %v", err)
		}

		u, err := s.queries.GetUsuarioByUsername(context.Background(), "admin")
		if err != nil {
			t.Fatalf("ユーザーの取得に失敗: %v", err)
		}
		if u.Password != "original" {
			t.Errorf("password: got %q, want %q", u.Password, "original")
		}
	})

	t.Run("環境変数が未設定の場合は何もしないこと", func(t *testing.T) {
		s, _ := setupTestServer(t)

		t.Setenv("ADMIN_USERNAME", "")
		t.Setenv("ADMIN_PASSWORD", "")

		if err := s.seedAdminUsuario(context.Background()); err != nil {
			t.Fatalf("seedAdminUsuario()でエラーが発生: %v", err)
		}
	})
}
