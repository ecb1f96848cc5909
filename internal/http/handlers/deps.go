package handlers

import (
	"mywallet/internal/repos"
	"mywallet/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth          *services.AuthService
	AuthHandler   *AuthHandler
	LedgerHandler *LedgerHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	sessionRepo := repos.NewSessionRepo(db)
	txRepo := repos.NewTransactionRepo(db)

	authSvc := &services.AuthService{Users: userRepo, Sessions: sessionRepo}
	ledgerSvc := services.NewLedgerService(txRepo)

	return &Deps{
		Auth:          authSvc,
		AuthHandler:   &AuthHandler{Auth: authSvc},
		LedgerHandler: &LedgerHandler{Ledger: ledgerSvc},
	}
}
