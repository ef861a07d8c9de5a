package server

import (
	"encoding/json"
	stdhttp "net/http"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/paras-gg/belajarbareng-fin/internal/conf"
	"github.com/paras-gg/belajarbareng-fin/internal/service"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Bootstrap, premium *service.PremiumService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
		http.Filter(corsFilter),
		http.ErrorEncoder(newErrorEncoder(logger)),
	}
	if c.Server.Http.Addr != "" {
		opts = append(opts, http.Address(c.Server.Http.Addr))
	}
	if t := c.Server.HTTPTimeout(); t > 0 {
		opts = append(opts, http.Timeout(t))
	}
	srv := http.NewServer(opts...)

	service.RegisterPremiumHTTPServer(srv, premium)

	srv.Route("/").GET("/health", func(ctx http.Context) error {
		return ctx.Result(200, map[string]string{
			"status":  "ok",
			"service": "premium-checkout",
		})
	})

	return srv
}

// corsFilter answers preflight itself and stamps permissive CORS on every
// response. Browser checkouts come straight from third-party origins, so the
// allow list mirrors what the hosted platform's clients send.
func corsFilter(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == stdhttp.MethodOptions {
			w.WriteHeader(stdhttp.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// newErrorEncoder writes the public failure contract: every failure is a 500
// carrying {"error": message} and nothing else. Codes, reasons, and upstream
// detail are logged here, server-side, and never serialized. Errors that
// don't carry a curated message (reason-less wrapping of raw errors) fall
// back to a generic line rather than echo internals.
func newErrorEncoder(logger log.Logger) http.EncodeErrorFunc {
	helper := log.NewHelper(logger)
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
		se := kerrors.FromError(err)
		msg := "internal server error"
		if se != nil && se.Reason != "" {
			msg = se.Message
		}
		helper.Errorf("request failed: method=%s path=%s code=%d reason=%s err=%v",
			r.Method, r.URL.Path, se.Code, se.Reason, err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stdhttp.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
	}
}
