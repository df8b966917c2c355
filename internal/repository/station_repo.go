package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GrMNIII/perla-metro-stations-service/internal/model"
	pkgerrors "github.com/GrMNIII/perla-metro-stations-service/pkg/errors"
)

// StationRepository 车站数据访问接口
// stations 表的唯一入口；涉及读取的查询一律遵守 is_active 可见性规则
// 每个操作都是单条语句，连接在语句结束时无条件归还连接池
type StationRepository interface {
	Create(ctx context.Context, station *model.Station) error
	ListActive(ctx context.Context) ([]model.Station, error)
	GetActiveByID(ctx context.Context, id uint) (*model.Station, error)
	Update(ctx context.Context, station *model.Station) error
	SoftDelete(ctx context.Context, id uint) error
}

type stationRepo struct {
	db *gorm.DB
}

// NewStationRepo 创建 StationRepository 实例
func NewStationRepo(db *gorm.DB) StationRepository {
	return &stationRepo{db: db}
}

// Create 插入新车站，is_active 固定为 true
// 类型码在落库前再做一次守卫，保证非法类型永远不会被持久化
func (r *stationRepo) Create(ctx context.Context, station *model.Station) error {
	if !station.Type.IsValid() {
		return model.ErrInvalidStationType
	}
	station.IsActive = true
	return r.db.WithContext(ctx).Create(station).Error
}

// ListActive 返回全部活跃车站，按 id 升序（即插入顺序）
func (r *stationRepo) ListActive(ctx context.Context) ([]model.Station, error) {
	var stations []model.Station
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&stations).Error
	return stations, err
}

// GetActiveByID 按 id 查询活跃车站
// id 不存在与已软删除对调用方不可区分，统一返回 gorm.ErrRecordNotFound
func (r *stationRepo) GetActiveByID(ctx context.Context, id uint) (*model.Station, error) {
	var station model.Station
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&station).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

// Update 单条语句覆盖全部可变字段，不限制当前 is_active 状态
func (r *stationRepo) Update(ctx context.Context, station *model.Station) error {
	if !station.Type.IsValid() {
		return model.ErrInvalidStationType
	}

	result := r.db.WithContext(ctx).
		Model(&model.Station{}).
		Where("id = ?", station.ID).
		Updates(map[string]interface{}{
			"name":      station.Name,
			"location":  station.Location,
			"type":      station.Type,
			"is_active": station.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNoRowsUpdated
	}
	return nil
}

// SoftDelete 仅当 id 命中且当前活跃时置 is_active = false
// 未命中覆盖「从未存在」与「已软删除」两种情况
func (r *stationRepo) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Station{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNoRowsUpdated
	}
	return nil
}
