package main

// @title Storefront API
// @version 1.0
// @description Single-vendor storefront: accounts, catalog, cart and checkout with full observability (Prometheus, Jaeger)

// @contact.name API Support
// @contact.url http://github.com/tair/storefront

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name storefront_session
// @description Session token set by POST /session.

// @tag.name Account
// @tag.description Registration and sessions

// @tag.name Products
// @tag.description Product listing and management

// @tag.name Cart
// @tag.description The signed-in buyer's cart

// @tag.name Transactions
// @tag.description Transactions

// @tag.name Health
// @tag.description Health check endpoints
