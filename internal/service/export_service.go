package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/GrMNIII/perla-metro-stations-service/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出活跃车站名录为 Excel (.xlsx)，软删除的车站不出现在导出结果中
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportStations 导出活跃车站名录为 Excel
	ExportStations(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportStations 导出活跃车站名录
// 返回值：buf（Excel 内容）, filename（建议文件名）, error
func (s *exportService) ExportStations(ctx context.Context) (*bytes.Buffer, string, error) {
	stations, err := s.repo.Station.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询车站名录失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Stations"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	// 表头
	headers := []string{"ID", "名称", "位置", "类型", "状态"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	// 数据行（名录只含活跃车站，状态列恒为「启用」，保留以便对账）
	for i := range stations {
		st := &stations[i]
		values := []interface{}{st.ID, st.Name, st.Location, string(st.Type), "启用"}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", ErrExportGenerateFail
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("stations_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}
