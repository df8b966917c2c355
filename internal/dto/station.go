package dto

// ── 车站模块 DTO ──
// 每个端点使用显式类型化的请求/响应结构，不做无类型透传

// CreateStationRequest 创建车站请求
type CreateStationRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=100"`
	Location string `json:"location" binding:"required,min=1,max=200"`
	Type     string `json:"type"     binding:"required,oneof=origin destination intermediate"`
}

// UpdateStationRequest 更新车站请求
// 全字段覆盖；is_active 必须为 JSON 布尔值（指针 + required 同时拒绝缺失与错误类型）
type UpdateStationRequest struct {
	Name     string `json:"name"      binding:"required,min=1,max=100"`
	Location string `json:"location"  binding:"required,min=1,max=200"`
	Type     string `json:"type"      binding:"required,oneof=origin destination intermediate"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// CreateStationResponse 创建车站响应
type CreateStationResponse struct {
	StationID uint   `json:"stationId"`
	Name      string `json:"name"`
	Location  string `json:"location"`
}

// StationResponse 车站信息响应
type StationResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
}

// ConfirmationResponse 操作确认响应
type ConfirmationResponse struct {
	Message string `json:"message"`
}
