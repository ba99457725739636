package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Deva1502/kono-banking-application-main/config"
	"github.com/Deva1502/kono-banking-application-main/database"
	"github.com/Deva1502/kono-banking-application-main/models"
	"github.com/Deva1502/kono-banking-application-main/routers/authRoutes"
	userRoutes "github.com/Deva1502/kono-banking-application-main/routers/userRoutes"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp boots the full HTTP surface against in-memory SQLite and
// miniredis so signup/login/profile flows run end to end.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = config.Config{
		JwtSecret: "test-secret",
		JwtExpiry: time.Hour,
		SaltRound: bcrypt.MinCost,
	}

	mr := miniredis.RunT(t)
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	payload := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, payload
}

func signup(t *testing.T, app *fiber.App, name, email, password, acType string) string {
	t.Helper()
	status, payload := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
		"ac_type":  acType,
	}, "")
	if status != fiber.StatusCreated {
		t.Fatalf("signup status=%d payload=%v", status, payload)
	}
	data := payload["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("signup returned no token")
	}
	return token
}

func TestSignupProvisionsAccountWithOpeningTransaction(t *testing.T) {
	app, db := setupApp(t)

	token := signup(t, app, "Asha", "asha@bank.test", "secret123", "current")

	var accounts []models.Account
	if err := db.Find(&accounts).Error; err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 {
		t.Fatalf("accounts=%d want=1", len(accounts))
	}
	if accounts[0].Amount != 0 || accounts[0].AcType != "current" {
		t.Fatalf("account=%+v want amount=0 ac_type=current", accounts[0])
	}

	var txns []models.Transaction
	if err := db.Find(&txns).Error; err != nil {
		t.Fatal(err)
	}
	if len(txns) != 1 {
		t.Fatalf("transactions=%d want=1", len(txns))
	}
	if txns[0].Amount != 0 || txns[0].Type != models.TxnCredit || !txns[0].IsSuccess || txns[0].Remark != models.OpeningRemark {
		t.Fatalf("opening transaction=%+v", txns[0])
	}

	status, payload := doJSON(t, app, "GET", "/user/profile", nil, token)
	if status != fiber.StatusOK {
		t.Fatalf("profile status=%d payload=%v", status, payload)
	}
	data := payload["data"].(map[string]interface{})

	gotAccounts := data["accounts"].([]interface{})
	if len(gotAccounts) != 1 {
		t.Fatalf("profile accounts=%v want one entry", gotAccounts)
	}
	first := gotAccounts[0].(map[string]interface{})
	if first["amount"].(float64) != 0 || first["ac_type"].(string) != "current" {
		t.Fatalf("profile account=%v want amount=0 ac_type=current", first)
	}
	if data["fd_amount"].(float64) != 0 {
		t.Fatalf("fd_amount=%v want=0", data["fd_amount"])
	}
	if atms := data["atms"].([]interface{}); len(atms) != 0 {
		t.Fatalf("atms=%v want empty", atms)
	}
}

func TestSignupDuplicateEmailIsCaseInsensitive(t *testing.T) {
	app, _ := setupApp(t)

	signup(t, app, "Asha", "Asha@Bank.TEST", "secret123", "savings")

	status, _ := doJSON(t, app, "POST", "/auth/signup", fiber.Map{
		"name":     "Imposter",
		"email":    "asha@bank.test",
		"password": "secret123",
	}, "")
	if status != fiber.StatusConflict {
		t.Fatalf("status=%d want=409", status)
	}
}

func TestLoginTouchesLastLogin(t *testing.T) {
	app, db := setupApp(t)
	signup(t, app, "Asha", "asha@bank.test", "secret123", "savings")

	status, payload := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "asha@bank.test",
		"password": "secret123",
	}, "")
	if status != fiber.StatusOK {
		t.Fatalf("login status=%d payload=%v", status, payload)
	}
	data := payload["data"].(map[string]interface{})
	if tok, _ := data["token"].(string); tok == "" {
		t.Fatal("login returned no token")
	}

	var user models.User
	if err := db.Where("email = ?", "asha@bank.test").First(&user).Error; err != nil {
		t.Fatal(err)
	}
	if user.LastLoginAt == nil {
		t.Fatal("last_login_at not set after login")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, _ := setupApp(t)
	signup(t, app, "Asha", "asha@bank.test", "secret123", "savings")

	status, _ := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "asha@bank.test",
		"password": "wrong-pass",
	}, "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status=%d want=401", status)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	app, _ := setupApp(t)
	token := signup(t, app, "Asha", "asha@bank.test", "secret123", "savings")

	status, _ := doJSON(t, app, "POST", "/auth/logout", nil, token)
	if status != fiber.StatusOK {
		t.Fatalf("logout status=%d want=200", status)
	}

	status, _ = doJSON(t, app, "GET", "/user/profile", nil, token)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("revoked token still accepted, status=%d", status)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doJSON(t, app, "GET", "/user/profile", nil, "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status=%d want=401", status)
	}
}
