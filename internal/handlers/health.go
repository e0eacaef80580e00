package handlers

import "net/http"

const healthMessage = "CyberMe Systems Operational."

// Health responds to the root health check with a plain text banner.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(healthMessage))
}
