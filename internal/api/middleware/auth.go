package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

type contextKey string

// StaffIDKey ключ контекста с ID сотрудника из заголовка X-Staff-ID
const StaffIDKey contextKey = "staffID"

const msgMissingStaffID = "требуется заголовок X-Staff-ID"

// Auth проверяет наличие заголовка X-Staff-ID и кладет ID сотрудника
// в контекст запроса. Запросы без корректного заголовка отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffIDStr := r.Header.Get("X-Staff-ID")
		if staffIDStr == "" {
			respondUnauthorized(w)
			return
		}

		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			respondUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), StaffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext извлекает ID сотрудника из контекста запроса
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(StaffIDKey).(int64)
	return id, ok
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msgMissingStaffID})
}
