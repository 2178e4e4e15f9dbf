package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	cors *cors.Cors
}

// NewCORSMiddleware allows browser calls from origins. A "*" entry allows any origin.
func NewCORSMiddleware(origins []string) *CORSMiddleware {
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{RequestIDHeader},
			AllowCredentials: true,
		}),
	}
}

func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
