package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction. Post-commit
// hooks registered via OnCommit run only after a successful commit, so
// best-effort side effects (event publishing) never fire for rolled-back work.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = setHooksToContext(ctx, hooks)
			r = r.WithContext(ctx)

			rw := &txResponseWriter{header: make(http.Header), statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				rw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			rw.flush(w)

			for _, fn := range hooks.fns {
				fn()
			}
		})
	}
}

// txResponseWriter buffers the handler's response. The middleware needs the
// status code to decide between commit and rollback, and must not release a
// success body to the client until the commit has actually happened.
type txResponseWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func (rw *txResponseWriter) Header() http.Header {
	return rw.header
}

func (rw *txResponseWriter) Write(b []byte) (int, error) {
	return rw.body.Write(b)
}

func (rw *txResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
}

func (rw *txResponseWriter) flush(w http.ResponseWriter) {
	for key, values := range rw.header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(rw.statusCode)
	if _, err := w.Write(rw.body.Bytes()); err != nil {
		logger.Log.Errorw("failed to write buffered response", "error", err)
	}
}

// commitHooks collects functions to run after a successful commit.
type commitHooks struct {
	fns []func()
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

type hooksKey struct{}

var hooksContextKey = hooksKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

func setHooksToContext(ctx context.Context, hooks *commitHooks) context.Context {
	return context.WithValue(ctx, hooksContextKey, hooks)
}

// OnCommit schedules fn to run after the surrounding request transaction
// commits. Outside a transaction fn runs immediately.
func OnCommit(ctx context.Context, fn func()) {
	hooks, _ := ctx.Value(hooksContextKey).(*commitHooks)
	if hooks == nil {
		fn()
		return
	}
	hooks.fns = append(hooks.fns, fn)
}
