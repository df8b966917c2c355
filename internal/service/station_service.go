package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GrMNIII/perla-metro-stations-service/internal/dto"
	"github.com/GrMNIII/perla-metro-stations-service/internal/model"
	"github.com/GrMNIII/perla-metro-stations-service/internal/repository"
	pkgerrors "github.com/GrMNIII/perla-metro-stations-service/pkg/errors"
)

// ── 车站模块业务错误 ──

var (
	ErrStationNotFound    = errors.New("车站不存在")
	ErrInvalidStationType = errors.New("车站类型无效")
)

// StationService 车站业务接口
type StationService interface {
	Create(ctx context.Context, req *dto.CreateStationRequest) (*dto.CreateStationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.StationResponse, error)
	List(ctx context.Context) ([]dto.StationResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateStationRequest) error
	SoftDelete(ctx context.Context, id uint) error
}

type stationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStationService 创建 StationService 实例
func NewStationService(repo *repository.Repository, logger *zap.Logger) StationService {
	return &stationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *stationService) Create(ctx context.Context, req *dto.CreateStationRequest) (*dto.CreateStationResponse, error) {
	stationType := model.StationType(req.Type)
	if !stationType.IsValid() {
		return nil, ErrInvalidStationType
	}

	station := &model.Station{
		Name:     req.Name,
		Location: req.Location,
		Type:     stationType,
		IsActive: true,
	}

	if err := s.repo.Station.Create(ctx, station); err != nil {
		if errors.Is(err, model.ErrInvalidStationType) {
			return nil, ErrInvalidStationType
		}
		s.logger.Error("创建车站失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateStationResponse{
		StationID: station.ID,
		Name:      station.Name,
		Location:  station.Location,
	}, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *stationService) GetByID(ctx context.Context, id uint) (*dto.StationResponse, error) {
	station, err := s.repo.Station.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStationNotFound
		}
		s.logger.Error("查询车站失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toStationResponse(station), nil
}

// ────────────────────── List ──────────────────────

func (s *stationService) List(ctx context.Context) ([]dto.StationResponse, error) {
	stations, err := s.repo.Station.ListActive(ctx)
	if err != nil {
		s.logger.Error("列出车站失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StationResponse, 0, len(stations))
	for i := range stations {
		result = append(result, *toStationResponse(&stations[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

// Update 覆盖全部可变字段，不限制当前 is_active 状态
// id 未命中返回 ErrStationNotFound，不会创建新行
func (s *stationService) Update(ctx context.Context, id uint, req *dto.UpdateStationRequest) error {
	stationType := model.StationType(req.Type)
	if !stationType.IsValid() {
		return ErrInvalidStationType
	}

	station := &model.Station{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		Type:     stationType,
		IsActive: *req.IsActive,
	}

	if err := s.repo.Station.Update(ctx, station); err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrNoRowsUpdated):
			return ErrStationNotFound
		case errors.Is(err, model.ErrInvalidStationType):
			return ErrInvalidStationType
		}
		s.logger.Error("更新车站失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── SoftDelete ──────────────────────

// SoftDelete 软删除：置 is_active = false
// 重复删除与删除不存在的 id 均报告 ErrStationNotFound
func (s *stationService) SoftDelete(ctx context.Context, id uint) error {
	if err := s.repo.Station.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pkgerrors.ErrNoRowsUpdated) {
			return ErrStationNotFound
		}
		s.logger.Error("删除车站失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func toStationResponse(station *model.Station) *dto.StationResponse {
	return &dto.StationResponse{
		ID:       station.ID,
		Name:     station.Name,
		Location: station.Location,
		Type:     string(station.Type),
		IsActive: station.IsActive,
	}
}
