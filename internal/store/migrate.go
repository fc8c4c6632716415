package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Collection names. Every repository reads and writes through these.
const (
	CollWorkItems      = "work_items"
	CollProjects       = "projects"
	CollUsers          = "users"
	CollAssets         = "assets"
	CollArticles       = "articles"
	CollNotifications  = "notifications"
	CollFieldDrafts    = "field_drafts"
	CollSettings       = "settings"
	CollDocuments      = "documents"
	CollBlueprints     = "blueprints"
	CollMaterials      = "materials"
	CollStockMovements = "stock_movements"
	CollDailyLogs      = "daily_logs"
	CollEmployees      = "employees"
	CollPayroll        = "payroll"
	CollVendors        = "vendors"
	CollPurchaseOrders = "purchase_orders"
	CollContracts      = "contracts"
	CollPettyCash      = "petty_cash"
	CollClients        = "clients"
	CollChangeOrders   = "change_orders"
	CollRfis           = "rfis"
	CollSubmittals     = "submittals"
	CollSubcontractors = "subcontractors"
	CollCertificates   = "certificates"
	CollNcrs           = "ncrs"
	CollPermits        = "permits"
	CollLgs            = "lgs"
	CollAutomation     = "automation_rules"
)

// schemaVersions declares, per schema version, the collections that version
// introduces. Upgrades are additive only: a new version may add collections
// but never alters or drops an existing one. Version state lives in
// PRAGMA user_version.
var schemaVersions = [][]string{
	// v1: the original core set
	{CollWorkItems, CollProjects, CollUsers, CollAssets, CollArticles,
		CollNotifications, CollFieldDrafts, CollSettings},
	// v2: document management and blueprints
	{CollDocuments, CollBlueprints},
	// v3: inventory, HR, procurement
	{CollMaterials, CollStockMovements, CollDailyLogs, CollEmployees,
		CollPayroll, CollVendors, CollPurchaseOrders, CollContracts, CollPettyCash},
	// v4: stakeholder portals and automation
	{CollClients, CollChangeOrders, CollRfis, CollSubmittals, CollSubcontractors,
		CollCertificates, CollNcrs, CollPermits, CollLgs, CollAutomation},
}

var knownCollections = func() map[string]bool {
	m := make(map[string]bool)
	for _, version := range schemaVersions {
		for _, c := range version {
			m[c] = true
		}
	}
	return m
}()

// SchemaVersion is the version a fully migrated store reports.
var SchemaVersion = len(schemaVersions)

func migrate(ctx context.Context, db *sql.DB) error {
	var current int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for v := current; v < SchemaVersion; v++ {
		for _, coll := range schemaVersions[v] {
			stmt := `CREATE TABLE IF NOT EXISTS ` + coll + ` (
				id   TEXT PRIMARY KEY,
				data TEXT NOT NULL
			)`
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration v%d (%s): %w", v+1, coll, err)
			}
		}
	}

	// PRAGMA does not accept bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("bumping schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migrations: %w", err)
	}
	committed = true
	return nil
}
