package model

import (
	"errors"
	"time"
)

// ── 车站类型码（封闭集合）──

// StationType 车站类型码
type StationType string

const (
	StationTypeOrigin       StationType = "origin"       // 起点站
	StationTypeDestination  StationType = "destination"  // 终点站
	StationTypeIntermediate StationType = "intermediate" // 中间站
)

// ErrInvalidStationType 车站类型不在允许集合内
var ErrInvalidStationType = errors.New("车站类型无效")

// IsValid 判断类型码是否属于允许集合
func (t StationType) IsValid() bool {
	switch t {
	case StationTypeOrigin, StationTypeDestination, StationTypeIntermediate:
		return true
	}
	return false
}

// Station 车站表 — 对应 stations
// is_active = false 表示软删除，对常规读取不可见；记录本身不物理删除
type Station struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"           json:"id"`
	Name      string      `gorm:"type:text;not null"                 json:"name"`
	Location  string      `gorm:"type:text;not null"                 json:"location"`
	Type      StationType `gorm:"type:text;not null"                 json:"type"`
	IsActive  bool        `gorm:"not null;default:true"              json:"is_active"`
	CreatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (Station) TableName() string { return "stations" }
