package db

import (
	"database/sql"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("agenda/internal/adapter/db")

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func recordRowsAffected(span trace.Span, result sql.Result) {
	if affected, err := result.RowsAffected(); err == nil {
		span.SetAttributes(attribute.Int64("db.rows_affected", affected))
	}
}
