package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ericblois/marketplace-backend/internal/auth"
	"github.com/ericblois/marketplace-backend/internal/business"
	"github.com/ericblois/marketplace-backend/internal/catalog"
	"github.com/ericblois/marketplace-backend/internal/config"
	"github.com/ericblois/marketplace-backend/internal/docstore"
	"github.com/ericblois/marketplace-backend/internal/order"
	"github.com/ericblois/marketplace-backend/internal/user"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()
	if err := docstore.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	store := docstore.NewPGStore(pool)

	users := user.NewRepo(store)
	orders := order.NewService(store, catalog.NewStoreLookup(store), users, cfg.TaxRate)
	businesses := business.NewService(store)
	verifier := auth.NewStoreVerifier(store)

	r := newRouter(orders, businesses, users, verifier)
	log.Printf("marketplace-service listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
