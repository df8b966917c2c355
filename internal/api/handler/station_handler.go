package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GrMNIII/perla-metro-stations-service/internal/dto"
	"github.com/GrMNIII/perla-metro-stations-service/internal/service"
	"github.com/GrMNIII/perla-metro-stations-service/pkg/response"
)

// StationHandler 车站模块 HTTP 处理器
// 入参校验在任何存储调用之前完成；仓储结果在此映射为 HTTP 状态码
type StationHandler struct {
	stationSvc service.StationService
}

// NewStationHandler 创建 StationHandler
func NewStationHandler(stationSvc service.StationService) *StationHandler {
	return &StationHandler{stationSvc: stationSvc}
}

// CreateStation 创建车站
// POST /api/stations
func (h *StationHandler) CreateStation(c *gin.Context) {
	var req dto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name、location、type 均为必填，且 type 必须为 origin / destination / intermediate 之一")
		return
	}

	result, err := h.stationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStationError(c, err)
		return
	}

	response.Created(c, result)
}

// ListStations 获取活跃车站列表
// GET /api/stations
func (h *StationHandler) ListStations(c *gin.Context) {
	stations, err := h.stationSvc.List(c.Request.Context())
	if err != nil {
		h.handleStationError(c, err)
		return
	}

	response.OK(c, stations)
}

// GetStation 按 id 获取活跃车站
// GET /api/stations/:id
func (h *StationHandler) GetStation(c *gin.Context) {
	id, ok := parseStationID(c)
	if !ok {
		return
	}

	station, err := h.stationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleStationError(c, err)
		return
	}

	response.OK(c, station)
}

// UpdateStation 更新车站（全字段覆盖，不限制当前启用状态）
// PUT /api/stations/:id
func (h *StationHandler) UpdateStation(c *gin.Context) {
	id, ok := parseStationID(c)
	if !ok {
		return
	}

	var req dto.UpdateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name、location、type、is_active 均为必填，且 is_active 必须为布尔值")
		return
	}

	if err := h.stationSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleStationError(c, err)
		return
	}

	response.OK(c, dto.ConfirmationResponse{Message: "车站更新成功"})
}

// DeleteStation 软删除车站
// DELETE /api/stations/:id
func (h *StationHandler) DeleteStation(c *gin.Context) {
	id, ok := parseStationID(c)
	if !ok {
		return
	}

	if err := h.stationSvc.SoftDelete(c.Request.Context(), id); err != nil {
		h.handleStationError(c, err)
		return
	}

	response.OK(c, dto.ConfirmationResponse{Message: "车站已删除"})
}

// parseStationID 解析路径参数 :id；非法 id 写入 400 并返回 ok=false
func parseStationID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "车站 id 必须为正整数")
		return 0, false
	}
	return uint(id), true
}

// handleStationError 统一处理车站模块业务错误
func (h *StationHandler) handleStationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStationNotFound):
		response.NotFound(c, "车站不存在")
	case errors.Is(err, service.ErrInvalidStationType):
		response.BadRequest(c, "车站类型无效")
	default:
		response.InternalError(c)
	}
}
