package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithGzip сжимает JSON-ответы, если клиент прислал Accept-Encoding: gzip.
var WithGzip func(http.Handler) http.Handler = chimw.Compress(5, "application/json")
