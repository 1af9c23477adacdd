package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// HumaMiddleware attaches a fresh LogData to every huma operation and writes
// one log line when the operation finishes.
func HumaMiddleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := "Unknown"
		if op := ctx.Operation(); op != nil && op.OperationID != "" {
			loggingName = op.OperationID
		}

		requestID := ctx.Header(RequestIDHeader)
		if requestID == "" {
			requestID = newRequestID()
		}
		ctx.SetHeader(RequestIDHeader, requestID)

		logData := NewLogData(log)
		logData.AddData("requestID", requestID)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)

		entry := logData.Log()
		switch {
		case status >= http.StatusInternalServerError:
			entry.Errorf("Handler.%v.Error", loggingName)
		case status >= http.StatusBadRequest:
			entry.Warnf("Handler.%v.Rejected", loggingName)
		default:
			entry.Infof("Handler.%v.Complete", loggingName)
		}
	}
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
