package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/GrMNIII/perla-metro-stations-service/internal/model"
	pkgerrors "github.com/GrMNIII/perla-metro-stations-service/pkg/errors"
)

// ── Mock StationRepository ──
// 行为与 gorm 实现的契约保持一致：
// 读取遵守 is_active 可见性；条件更新未命中返回 ErrNoRowsUpdated

type mockStationRepo struct {
	stations map[uint]*model.Station
	nextID   uint
	failErr  error // 非 nil 时所有操作返回该错误，模拟存储故障
}

func newMockStationRepo() *mockStationRepo {
	return &mockStationRepo{stations: make(map[uint]*model.Station), nextID: 1}
}

func (m *mockStationRepo) Create(_ context.Context, station *model.Station) error {
	if m.failErr != nil {
		return m.failErr
	}
	if !station.Type.IsValid() {
		return model.ErrInvalidStationType
	}
	station.ID = m.nextID
	m.nextID++
	station.IsActive = true
	clone := *station
	m.stations[station.ID] = &clone
	return nil
}

func (m *mockStationRepo) ListActive(_ context.Context) ([]model.Station, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	ids := make([]uint, 0, len(m.stations))
	for id := range m.stations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Station
	for _, id := range ids {
		if m.stations[id].IsActive {
			result = append(result, *m.stations[id])
		}
	}
	return result, nil
}

func (m *mockStationRepo) GetActiveByID(_ context.Context, id uint) (*model.Station, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	st, ok := m.stations[id]
	if !ok || !st.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *st
	return &clone, nil
}

func (m *mockStationRepo) Update(_ context.Context, station *model.Station) error {
	if m.failErr != nil {
		return m.failErr
	}
	if !station.Type.IsValid() {
		return model.ErrInvalidStationType
	}
	st, ok := m.stations[station.ID]
	if !ok {
		return pkgerrors.ErrNoRowsUpdated
	}
	st.Name = station.Name
	st.Location = station.Location
	st.Type = station.Type
	st.IsActive = station.IsActive
	return nil
}

func (m *mockStationRepo) SoftDelete(_ context.Context, id uint) error {
	if m.failErr != nil {
		return m.failErr
	}
	st, ok := m.stations[id]
	if !ok || !st.IsActive {
		return pkgerrors.ErrNoRowsUpdated
	}
	st.IsActive = false
	return nil
}
