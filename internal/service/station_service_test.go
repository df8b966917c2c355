package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/GrMNIII/perla-metro-stations-service/internal/dto"
	"github.com/GrMNIII/perla-metro-stations-service/internal/model"
	"github.com/GrMNIII/perla-metro-stations-service/internal/repository"
)

// ── 测试辅助 ──

func setupTestStationService() (StationService, *mockStationRepo) {
	stationRepo := newMockStationRepo()
	repo := &repository.Repository{Station: stationRepo}
	svc := NewStationService(repo, zap.NewNop())
	return svc, stationRepo
}

func boolPtr(b bool) *bool { return &b }

// ── Create 测试 ──

func TestStationService_Create_Success(t *testing.T) {
	svc, _ := setupTestStationService()

	req := &dto.CreateStationRequest{
		Name:     "Central",
		Location: "5th Ave",
		Type:     "origin",
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.StationID != 1 {
		t.Errorf("期望 StationID=1，实际=%d", result.StationID)
	}
	if result.Name != "Central" || result.Location != "5th Ave" {
		t.Errorf("响应字段与提交值不一致: %+v", result)
	}
}

func TestStationService_Create_IDsUnique(t *testing.T) {
	svc, _ := setupTestStationService()

	first, err := svc.Create(context.Background(), &dto.CreateStationRequest{
		Name: "A", Location: "L1", Type: "origin",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	second, err := svc.Create(context.Background(), &dto.CreateStationRequest{
		Name: "B", Location: "L2", Type: "destination",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if first.StationID == second.StationID {
		t.Errorf("两次创建返回了相同的 id: %d", first.StationID)
	}
}

func TestStationService_Create_InvalidType(t *testing.T) {
	svc, stationRepo := setupTestStationService()

	req := &dto.CreateStationRequest{
		Name:     "Central",
		Location: "5th Ave",
		Type:     "unknown",
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrInvalidStationType) {
		t.Errorf("期望 ErrInvalidStationType，实际: %v", err)
	}
	if len(stationRepo.stations) != 0 {
		t.Error("非法类型不应有任何行被持久化")
	}
}

func TestStationService_Create_StorageError(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.failErr = errors.New("connection refused")

	_, err := svc.Create(context.Background(), &dto.CreateStationRequest{
		Name: "Central", Location: "5th Ave", Type: "origin",
	})
	if err == nil || errors.Is(err, ErrStationNotFound) || errors.Is(err, ErrInvalidStationType) {
		t.Errorf("存储故障应按原样上抛: %v", err)
	}
}

// ── GetByID 测试 ──

func TestStationService_GetByID_RoundTrip(t *testing.T) {
	svc, _ := setupTestStationService()

	created, err := svc.Create(context.Background(), &dto.CreateStationRequest{
		Name: "Central", Location: "5th Ave", Type: "origin",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	result, err := svc.GetByID(context.Background(), created.StationID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.ID != created.StationID {
		t.Errorf("期望 ID=%d，实际=%d", created.StationID, result.ID)
	}
	if result.Name != "Central" || result.Location != "5th Ave" || result.Type != "origin" {
		t.Errorf("往返字段不一致: %+v", result)
	}
	if !result.IsActive {
		t.Error("新建车站应为启用状态")
	}
}

func TestStationService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestStationService()

	_, err := svc.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("期望 ErrStationNotFound，实际: %v", err)
	}
}

func TestStationService_GetByID_Inactive_NotFound(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.stations[1] = &model.Station{
		ID: 1, Name: "Central", Location: "5th Ave",
		Type: model.StationTypeOrigin, IsActive: false,
	}

	// 软删除后的 id 与不存在的 id 对调用方必须不可区分
	_, err := svc.GetByID(context.Background(), 1)
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("期望 ErrStationNotFound，实际: %v", err)
	}
}

// ── List 测试 ──

func TestStationService_List_ActiveOnly(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.stations[1] = &model.Station{
		ID: 1, Name: "活跃车站", Location: "L1",
		Type: model.StationTypeOrigin, IsActive: true,
	}
	stationRepo.stations[2] = &model.Station{
		ID: 2, Name: "停用车站", Location: "L2",
		Type: model.StationTypeDestination, IsActive: false,
	}

	stations, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(stations) != 1 {
		t.Fatalf("期望1个车站，实际=%d", len(stations))
	}
	for _, s := range stations {
		if !s.IsActive {
			t.Error("不应返回停用车站")
		}
	}
}

func TestStationService_List_Empty(t *testing.T) {
	svc, _ := setupTestStationService()

	stations, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(stations) != 0 {
		t.Errorf("期望空列表，实际=%d", len(stations))
	}
}

// ── Update 测试 ──

func TestStationService_Update_Success(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.stations[1] = &model.Station{
		ID: 1, Name: "旧名称", Location: "旧位置",
		Type: model.StationTypeOrigin, IsActive: true,
	}

	req := &dto.UpdateStationRequest{
		Name:     "新名称",
		Location: "新位置",
		Type:     "intermediate",
		IsActive: boolPtr(false),
	}

	if err := svc.Update(context.Background(), 1, req); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	st := stationRepo.stations[1]
	if st.Name != "新名称" || st.Location != "新位置" {
		t.Errorf("字段未被覆盖: %+v", st)
	}
	if st.Type != model.StationTypeIntermediate {
		t.Errorf("期望 Type=intermediate，实际=%s", st.Type)
	}
	if st.IsActive {
		t.Error("is_active 应被显式更新为 false")
	}
}

func TestStationService_Update_InactiveRow(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.stations[1] = &model.Station{
		ID: 1, Name: "停用车站", Location: "L1",
		Type: model.StationTypeOrigin, IsActive: false,
	}

	// 更新不受当前 is_active 状态限制，可用于重新启用
	req := &dto.UpdateStationRequest{
		Name:     "停用车站",
		Location: "L1",
		Type:     "origin",
		IsActive: boolPtr(true),
	}

	if err := svc.Update(context.Background(), 1, req); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if !stationRepo.stations[1].IsActive {
		t.Error("车站应被重新启用")
	}
}

func TestStationService_Update_NotFound(t *testing.T) {
	svc, stationRepo := setupTestStationService()

	req := &dto.UpdateStationRequest{
		Name:     "新名称",
		Location: "新位置",
		Type:     "origin",
		IsActive: boolPtr(true),
	}

	err := svc.Update(context.Background(), 999, req)
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("期望 ErrStationNotFound，实际: %v", err)
	}
	if len(stationRepo.stations) != 0 {
		t.Error("更新不存在的 id 不应创建新行")
	}
}

func TestStationService_Update_InvalidType(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.stations[1] = &model.Station{
		ID: 1, Name: "Central", Location: "5th Ave",
		Type: model.StationTypeOrigin, IsActive: true,
	}

	req := &dto.UpdateStationRequest{
		Name:     "Central",
		Location: "5th Ave",
		Type:     "unknown",
		IsActive: boolPtr(true),
	}

	err := svc.Update(context.Background(), 1, req)
	if !errors.Is(err, ErrInvalidStationType) {
		t.Errorf("期望 ErrInvalidStationType，实际: %v", err)
	}
	if stationRepo.stations[1].Type != model.StationTypeOrigin {
		t.Error("非法类型不应被持久化")
	}
}

// ── SoftDelete 测试 ──

func TestStationService_SoftDelete_Success(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.stations[1] = &model.Station{
		ID: 1, Name: "Central", Location: "5th Ave",
		Type: model.StationTypeOrigin, IsActive: true,
	}

	if err := svc.SoftDelete(context.Background(), 1); err != nil {
		t.Fatalf("SoftDelete 应成功: %v", err)
	}
	if stationRepo.stations[1].IsActive {
		t.Error("车站应被置为停用")
	}
	if _, ok := stationRepo.stations[1]; !ok {
		t.Error("软删除不应物理删除记录")
	}
}

func TestStationService_SoftDelete_Twice(t *testing.T) {
	svc, stationRepo := setupTestStationService()
	stationRepo.stations[1] = &model.Station{
		ID: 1, Name: "Central", Location: "5th Ave",
		Type: model.StationTypeOrigin, IsActive: true,
	}

	if err := svc.SoftDelete(context.Background(), 1); err != nil {
		t.Fatalf("第一次 SoftDelete 应成功: %v", err)
	}

	err := svc.SoftDelete(context.Background(), 1)
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("重复删除期望 ErrStationNotFound，实际: %v", err)
	}
}

func TestStationService_SoftDelete_NotFound(t *testing.T) {
	svc, _ := setupTestStationService()

	err := svc.SoftDelete(context.Background(), 999)
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("期望 ErrStationNotFound，实际: %v", err)
	}
}
