package service

import (
	"go.uber.org/zap"

	"github.com/GrMNIII/perla-metro-stations-service/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Station StationService
	Export  ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Station: NewStationService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
