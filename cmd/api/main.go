// Package main GM Tools Admin Service
//
// GM Tools Admin is the back-office service our game-operations team uses
// to run the live game: looking players up, granting items and gold,
// deducting balances, banning and unbanning accounts in bulk, and
// reviewing large grants before they are applied.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/jingjie2002/GM-Tools-Admin/docs"
	"github.com/jingjie2002/GM-Tools-Admin/internal/app"
)

// @title GM Tools Admin Service
// @version 1.0
// @description Back-office service for game operations: player management, balance adjustments, batch bans and grant review.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
