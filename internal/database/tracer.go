package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// echoTracer implements pgx.QueryTracer and logs every statement at debug
// level. Installed when echo mode is on, mirroring the chatty engine the
// previous QuoteMaster deployment ran with.
type echoTracer struct{}

var _ pgx.QueryTracer = (*echoTracer)(nil)

type traceContextKey struct{}

type traceContext struct {
	start time.Time
	sql   string
}

func (t *echoTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceContextKey{}, traceContext{
		start: time.Now(),
		sql:   data.SQL,
	})
}

func (t *echoTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	tc, ok := ctx.Value(traceContextKey{}).(traceContext)
	if !ok {
		return
	}

	evt := log.Debug().
		Str("sql", tc.sql).
		Dur("elapsed", time.Since(tc.start))
	if data.Err != nil {
		evt = evt.Err(data.Err)
	}
	evt.Msg("statement")
}
