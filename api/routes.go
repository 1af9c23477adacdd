package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/handlers/v1/category"
	"github.com/carson-networks/expense-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

const shutdownTimeout = 30 * time.Second

var resourcePrefixes = []string{"/categories", "/transactions", "/dashboard"}

// detailMethods are the methods served on /<resource>/<id>/.
const detailMethods = "GET, PUT, PATCH, DELETE"

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	// DB is pinged by /status when set.
	DB      status.Pinger
}

type registrar interface {
	Register(api huma.API)
}

// Handler builds the router with every API operation registered.
func (r *Rest) Handler() http.Handler {
	apierror.UseBadRequestForValidation()

	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, apiConfig())
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	handlers := []registrar{
		category.NewListCategoriesHandler(r.Service.Category),
		category.NewGetCategoryHandler(r.Service.Category),
		category.NewCreateCategoryHandler(r.Service.Category),
		category.NewUpdateCategoryHandler(r.Service.Category),
		category.NewDeleteCategoryHandler(r.Service.Category),
		transaction.NewListTransactionsHandler(r.Service.Transaction),
		transaction.NewGetTransactionHandler(r.Service.Transaction),
		transaction.NewCreateTransactionHandler(r.Service.Transaction),
		transaction.NewUpdateTransactionHandler(r.Service.Transaction),
		transaction.NewDeleteTransactionHandler(r.Service.Transaction),
		dashboard.NewGetDashboardHandler(r.Service.Dashboard),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	return resourcePaths(mux)
}

// apiConfig is the default huma config without the schema link hook, so
// response bodies carry only their own fields.
func apiConfig() huma.Config {
	cfg := huma.DefaultConfig("Expense Server", "1.0.0")
	cfg.CreateHooks = nil
	return cfg
}

// resourcePaths redirects resource URLs missing their trailing slash. The
// collection patterns are mux subtrees, so anything other than
// /<resource>/ and /<resource>/<id>/ is rejected here before the mux can
// route it to a collection handler.
func resourcePaths(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path
		for _, prefix := range resourcePrefixes {
			if path != prefix && !strings.HasPrefix(path, prefix+"/") {
				continue
			}
			if !strings.HasSuffix(path, "/") {
				target := *req.URL
				target.Path = path + "/"
				http.Redirect(w, req, target.String(), http.StatusPermanentRedirect)
				return
			}

			rest := strings.TrimSuffix(strings.TrimPrefix(path, prefix+"/"), "/")
			if rest == "" {
				break
			}
			if prefix == "/dashboard" || strings.Contains(rest, "/") {
				http.NotFound(w, req)
				return
			}
			if req.Method == http.MethodPost {
				w.Header().Set("Allow", detailMethods)
				http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
				return
			}
			break
		}
		next.ServeHTTP(w, req)
	})
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}

	return <-shutdownErr
}
