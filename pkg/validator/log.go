package validator

import (
	"context"
	"log/slog"
	"sort"

	"github.com/dmitrymomot/uploadguard/pkg/logger"
)

func logRejection(l *slog.Logger, verr ValidationError) {
	if l == nil {
		return
	}

	keys := make([]string, 0, len(verr.Params))
	for k := range verr.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		params = append(params, slog.Any(k, verr.Params[k]))
	}

	l.LogAttrs(context.Background(), slog.LevelDebug, "upload rejected",
		logger.Code(verr.Code),
		logger.Field(verr.Field),
		logger.Group("params", params...),
	)
}
