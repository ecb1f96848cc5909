package handlers

import (
	"mywallet/internal/domain"
	applog "mywallet/internal/log"
	"mywallet/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type LedgerHandler struct {
	Ledger *services.LedgerService
}

type entryRequest struct {
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
}

type entryJSON struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"`
	Data      string  `json:"data"`
}

type statementResponse struct {
	Transactions []entryJSON `json:"transactions"`
	Total        float64     `json:"total"`
}

func kindFromTipo(tipo string) domain.Kind {
	switch tipo {
	case "entrada":
		return domain.KindIncome
	case "saida":
		return domain.KindExpense
	}
	return domain.Kind("")
}

func tipoFromKind(k domain.Kind) string {
	if k == domain.KindIncome {
		return "entrada"
	}
	return "saida"
}

// NovaTransacao handles POST /nova-transacao/:tipo.
func (h *LedgerHandler) NovaTransacao(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON([]string{"invalid request body"})
	}

	kind := kindFromTipo(c.Params("tipo"))
	if err := h.Ledger.Append(u, kind, req.Descricao, req.Valor); err != nil {
		return fail(c, "ledger.append", err)
	}

	applog.Audit(c, "ledger.append", map[string]any{"user_id": u.ID, "tipo": c.Params("tipo")})
	return c.SendStatus(fiber.StatusCreated)
}

// Home handles GET /home: the user's entries plus the running balance.
func (h *LedgerHandler) Home(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	ts, total, err := h.Ledger.Statement(u)
	if err != nil {
		return fail(c, "ledger.statement", err)
	}

	out := statementResponse{Transactions: make([]entryJSON, 0, len(ts)), Total: total.InexactFloat64()}
	for _, t := range ts {
		out.Transactions = append(out.Transactions, entryJSON{
			Descricao: t.Description,
			Valor:     t.Amount.InexactFloat64(),
			Tipo:      tipoFromKind(t.Kind),
			Data:      t.Date,
		})
	}
	return c.JSON(out)
}
