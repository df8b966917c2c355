package handler

import "github.com/GrMNIII/perla-metro-stations-service/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Station *StationHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Station: NewStationHandler(svc.Station),
		Export:  NewExportHandler(svc.Export),
	}
}
