package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/florist-store/florist-api/internal/config"
	"github.com/florist-store/florist-api/internal/docstore"
)

const rootMessage = "Florist Store Backend Running"

var startTime = time.Now()

// Diagnostics is the body served by GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// RegisterStatusRoutes mounts liveness, diagnostics and readiness.
func RegisterStatusRoutes(r gin.IRouter, gw docstore.Gateway, db config.DatabaseConfig) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": rootMessage})
	})

	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, Diagnose(c, gw, db))
	})

	r.GET("/ready", func(c *gin.Context) {
		uptime := time.Since(startTime).Round(time.Second).String()
		if docstore.IsUnavailable(gw) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": gin.H{"database": false}, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": gin.H{"database": true}, "uptime": uptime})
	})
}

// Diagnose builds the diagnostics snapshot. It degrades fields instead of failing.
func Diagnose(c *gin.Context, gw docstore.Gateway, db config.DatabaseConfig) Diagnostics {
	d := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(db.URL),
		DatabaseName:     setOrNot(db.Name),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if docstore.IsUnavailable(gw) {
		return d
	}
	d.ConnectionStatus = "connected"
	st := gw.Status(c.Request.Context())
	if st.Err != nil {
		d.Database = fmt.Sprintf("connected but error: %v", st.Err)
		return d
	}
	d.Database = "connected & working"
	if st.Collections != nil {
		d.Collections = st.Collections
	}
	return d
}

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}
