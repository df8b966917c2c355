package errors

import "errors"

// ErrNoRowsUpdated 条件更新未命中任何行
// Repository 层用于区分「语句执行失败」与「条件不满足」
var ErrNoRowsUpdated = errors.New("没有满足条件的记录被更新")
