package controllerImp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"alqualis/database"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the store and checks that every schema table is present.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbCheck := sub{OK: true}
	schemaCheck := sub{OK: true}
	if h.db == nil {
		dbCheck = sub{Err: "gorm db is nil"}
		schemaCheck = sub{Err: "no store"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbCheck = sub{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbCheck = sub{Err: "ping: " + err.Error()}
	}

	if dbCheck.OK {
		missing, err := database.MissingTables(ctx, h.db)
		switch {
		case err != nil:
			schemaCheck = sub{Err: "schema: " + err.Error()}
		case len(missing) > 0:
			schemaCheck = sub{Err: "missing tables: " + strings.Join(missing, ", ")}
		}
	} else {
		schemaCheck = sub{Err: "skipped"}
	}

	allOK := dbCheck.OK && schemaCheck.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": dbCheck,
			"schema":   schemaCheck,
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
