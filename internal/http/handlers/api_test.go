package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"mywallet/internal/http/handlers"
	"mywallet/internal/repos"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// single connection so :memory: state is shared across queries
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db)
	app := fiber.New()
	app.Post("/cadastro", deps.AuthHandler.Cadastro)
	app.Post("/", deps.AuthHandler.Login)
	requireUser := handlers.RequireUser(deps.Auth)
	app.Get("/home", requireUser, deps.LedgerHandler.Home)
	app.Post("/nova-transacao/:tipo", requireUser, deps.LedgerHandler.NovaTransacao)
	return app
}

func jsonReq(method, target string, body any) *http.Request {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

type loginBody struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
}

type statementBody struct {
	Transactions []struct {
		Descricao string  `json:"descricao"`
		Valor     float64 `json:"valor"`
		Tipo      string  `json:"tipo"`
		Data      string  `json:"data"`
	} `json:"transactions"`
	Total float64 `json:"total"`
}

func register(t *testing.T, app *fiber.App, name, email, password string) *http.Response {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/cadastro", fiber.Map{"name": name, "email": email, "password": password}))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/", fiber.Map{"email": email, "password": password}))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestRegisterValidationErrors(t *testing.T) {
	app := newTestApp(t)

	resp := register(t, app, "", "not-an-email", "ab")
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	msgs := decode[[]string](t, resp)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 validation messages, got %v", msgs)
	}
}

func TestRegisterConflictOnNameOrEmail(t *testing.T) {
	app := newTestApp(t)

	if resp := register(t, app, "Ana", "ana@x.com", "abc"); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	// same email, different name
	if resp := register(t, app, "Outra", "ana@x.com", "abc"); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", resp.StatusCode)
	}
	// same name, different email
	if resp := register(t, app, "Ana", "other@x.com", "abc"); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 on duplicate name, got %d", resp.StatusCode)
	}
}

func TestLoginPaths(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "Ana", "ana@x.com", "abc")

	// unknown email
	if resp := login(t, app, "nobody@x.com", "abc"); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %d", resp.StatusCode)
	}
	// wrong password
	if resp := login(t, app, "ana@x.com", "wrong"); resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.StatusCode)
	}
	// malformed email
	if resp := login(t, app, "not-an-email", "abc"); resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed email, got %d", resp.StatusCode)
	}
	// success
	resp := login(t, app, "ana@x.com", "abc")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decode[loginBody](t, resp)
	if body.Token == "" || body.UserName != "Ana" {
		t.Fatalf("unexpected login body: %+v", body)
	}
}

func TestHomeRequiresBearerToken(t *testing.T) {
	app := newTestApp(t)

	// no Authorization header
	resp, err := app.Test(jsonReq("GET", "/home", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", resp.StatusCode)
	}

	// unissued token
	req := jsonReq("GET", "/home", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", resp.StatusCode)
	}

	// header without the Bearer scheme
	req = jsonReq("GET", "/home", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer header, got %d", resp.StatusCode)
	}
}

// Full ledger flow: register, login, empty statement, append, re-read.
func TestLedgerFlow(t *testing.T) {
	app := newTestApp(t)

	if resp := register(t, app, "Ana", "ana@x.com", "abc"); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}
	if resp := register(t, app, "Ana", "ana@x.com", "abc"); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("re-register: expected 409, got %d", resp.StatusCode)
	}

	resp := login(t, app, "ana@x.com", "abc")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	token := decode[loginBody](t, resp).Token

	withToken := func(method, target string, body any) *http.Request {
		req := jsonReq(method, target, body)
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	// empty statement
	resp, err := app.Test(withToken("GET", "/home", nil))
	if err != nil {
		t.Fatal(err)
	}
	st := decode[statementBody](t, resp)
	if len(st.Transactions) != 0 || st.Total != 0 {
		t.Fatalf("expected empty statement, got %+v", st)
	}

	// income entry
	resp, err = app.Test(withToken("POST", "/nova-transacao/entrada", fiber.Map{"descricao": "Salário", "valor": 1500.50}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("append: expected 201, got %d", resp.StatusCode)
	}

	resp, err = app.Test(withToken("GET", "/home", nil))
	if err != nil {
		t.Fatal(err)
	}
	st = decode[statementBody](t, resp)
	if st.Total != 1500.50 || len(st.Transactions) != 1 {
		t.Fatalf("expected total 1500.50 with 1 entry, got %+v", st)
	}
	if st.Transactions[0].Descricao != "Salário" || st.Transactions[0].Tipo != "entrada" {
		t.Fatalf("unexpected entry: %+v", st.Transactions[0])
	}

	// expense brings the balance down
	resp, err = app.Test(withToken("POST", "/nova-transacao/saida", fiber.Map{"descricao": "Mercado", "valor": 200.25}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("append expense: expected 201, got %d", resp.StatusCode)
	}
	resp, err = app.Test(withToken("GET", "/home", nil))
	if err != nil {
		t.Fatal(err)
	}
	st = decode[statementBody](t, resp)
	if st.Total != 1300.25 {
		t.Fatalf("expected total 1300.25, got %v", st.Total)
	}

	// negative amount
	resp, err = app.Test(withToken("POST", "/nova-transacao/saida", fiber.Map{"descricao": "x", "valor": -5}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for negative amount, got %d", resp.StatusCode)
	}

	// too many decimal digits
	resp, err = app.Test(withToken("POST", "/nova-transacao/entrada", fiber.Map{"descricao": "x", "valor": 1.999}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for 3 decimal digits, got %d", resp.StatusCode)
	}

	// unknown tipo
	resp, err = app.Test(withToken("POST", "/nova-transacao/outro", fiber.Map{"descricao": "x", "valor": 5}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown tipo, got %d", resp.StatusCode)
	}
}
