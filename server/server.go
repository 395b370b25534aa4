package server

import (
	"context"
	"net"
	"net/http"
	"social_osint/logic"
	"social_osint/shared"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/fx"
)

const strCacheControlHdr = "Cache-Control"

func NewHTTPServer(cfg *shared.Config, logger shared.ILogger, lc fx.Lifecycle, router *mux.Router) *http.Server {
	addStr := ":" + strconv.FormatUint(uint64(cfg.ServicePort), 10)
	srv := &http.Server{Addr: addStr, Handler: trimSlashHandler(router)}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Printf("Starting HTTP server at %v", srv.Addr)
			go srv.Serve(listener)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Printf("Shutting down HTTP server")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

func trimSlashHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			r.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
		}
		next.ServeHTTP(w, r)
	})
}

func NewMux(groups []IHandlerGroup, logger shared.ILogger, metrics logic.IMetrics) *mux.Router {
	router := mux.NewRouter()
	for _, group := range groups {
		subRouter := router.PathPrefix(group.Prefix()).Subrouter()
		subRouter.Use(noCacheMW)
		subRouter.Use(group.AuthMW())
		for _, def := range group.GroupDefs() {
			subRouter.HandleFunc(def.pattern, observed(metrics, def)).Methods("OPTIONS", def.method)
		}
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Infof("%s request had status 404: %s", r.Method, r.URL.Path)
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
	})
	return router
}

// observed times a handler under its method and pattern.
func observed(metrics logic.IMetrics, def handlerDef) func(http.ResponseWriter, *http.Request) {
	label := def.method + " " + def.pattern
	return func(w http.ResponseWriter, r *http.Request) {
		obs := metrics.StartWebRequestIn(label)
		defer obs.Finish()
		def.handler(w, r)
	}
}

func noCacheMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(strCacheControlHdr, "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
