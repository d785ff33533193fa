package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"droneworks/hangar/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck. Postgres and Redis are
// pinged concurrently; a down dependency flips the overall status but the
// response still enumerates each service.
func HealthCheckHandler(db *sqlx.DB, redisClient *redis.Client, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)
		var mu sync.Mutex

		g, ctx := errgroup.WithContext(r.Context())

		g.Go(func() error {
			status := "ok"
			details := "Postgres Connected"
			if err := db.PingContext(ctx); err != nil {
				status = "down"
				details = err.Error()
			}
			mu.Lock()
			services["postgres"] = entities.ServiceStatus{Status: status, Details: details}
			mu.Unlock()
			return nil
		})

		g.Go(func() error {
			status := "ok"
			details := "Redis Connected"
			if err := redisClient.Ping(ctx).Err(); err != nil {
				status = "down"
				details = err.Error()
			}
			mu.Lock()
			services["redis"] = entities.ServiceStatus{Status: status, Details: details}
			mu.Unlock()
			return nil
		})

		_ = g.Wait()

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
