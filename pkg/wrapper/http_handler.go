package wrapper

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"
)

// HealthChecker check connectivity of one backend, ex: mongo ping
type HealthChecker func(ctx context.Context) error

// HTTPHandlerHealth service status with uptime and backend checks, respond 503 if one check failed
func HTTPHandlerHealth(serviceName string, startAt time.Time, checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		payload := struct {
			Message   string            `json:"message"`
			Hostname  string            `json:"hostname,omitempty"`
			Timestamp string            `json:"timestamp"`
			StartAt   string            `json:"start_at"`
			Uptime    string            `json:"uptime"`
			Checks    map[string]string `json:"checks,omitempty"`
		}{
			Message:   fmt.Sprintf("Service %s up and running", serviceName),
			Timestamp: now.Format(time.RFC3339Nano),
			StartAt:   startAt.Format(time.RFC3339),
			Uptime:    now.Sub(startAt).String(),
		}
		if hostname, err := os.Hostname(); err == nil {
			payload.Hostname = hostname
		}

		names := make([]string, 0, len(checkers))
		for name := range checkers {
			names = append(names, name)
		}
		sort.Strings(names)

		code := http.StatusOK
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		for _, name := range names {
			if payload.Checks == nil {
				payload.Checks = make(map[string]string, len(names))
			}
			if err := checkers[name](ctx); err != nil {
				code = http.StatusServiceUnavailable
				payload.Checks[name] = err.Error()
				continue
			}
			payload.Checks[name] = "ok"
		}
		WriteJSON(w, code, payload)
	}
}

// HTTPHandlerMemstats calculate runtime statistic
func HTTPHandlerMemstats(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	data := struct {
		NumGoroutine int         `json:"num_goroutine"`
		Memstats     interface{} `json:"memstats"`
	}{
		runtime.NumGoroutine(), m,
	}
	WriteJSON(w, http.StatusOK, data)
}
