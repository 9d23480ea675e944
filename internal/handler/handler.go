package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/Realeboha228/wings-cafe-main/internal/model"
	"github.com/Realeboha228/wings-cafe-main/internal/store"
	"github.com/Realeboha228/wings-cafe-main/pkg/logger"
	"github.com/Realeboha228/wings-cafe-main/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var errProductNotFound = errors.New("product not found")

// loadDataset reads the full dataset for the request. An unreadable store
// file degrades to the empty dataset so the endpoint keeps serving.
func loadDataset(c echo.Context) model.Dataset {
	defer prometheus.TrackStoreOperation("load")(time.Now())
	ds, err := store.Get().Load()
	if err != nil {
		logger.FromEcho(c).Warn("Store file unreadable, serving empty dataset", zap.Error(err))
		prometheus.RecordDatasetFallback()
	}
	return ds
}

// parseID parses the :id path parameter. The original ids are millisecond
// timestamps; anything unparsable simply never matches a record.
func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
