// Package display 提供仪表盘渲染所需的查找表、格式化和视图辅助函数。
package display

import (
	"fmt"
	"math"
	"time"

	"uptime-board/model"
)

// RefreshInterval 前端刷新间隔
const RefreshInterval = 300 * time.Second

// StatusStyle 状态对应的文字与样式类
type StatusStyle struct {
	Text      string `json:"text"`
	Color     string `json:"color"`
	Badge     string `json:"badge"`
	Dot       string `json:"dot"`
	TextClass string `json:"textClass"`
	HoverText string `json:"hoverText"`
	HoverBg   string `json:"hoverBg"`
}

func newStatusStyle(text, color string) StatusStyle {
	return StatusStyle{
		Text:      text,
		Color:     color,
		Badge:     fmt.Sprintf("bg-%[1]s-50 dark:bg-%[1]s-900/30 text-%[1]s-600 dark:text-%[1]s-400", color),
		Dot:       fmt.Sprintf("bg-%[1]s-500 dark:bg-%[1]s-400", color),
		TextClass: fmt.Sprintf("text-%s-500", color),
		HoverText: fmt.Sprintf("hover:text-%[1]s-600 dark:hover:text-%[1]s-300", color),
		HoverBg:   fmt.Sprintf("hover:bg-%[1]s-50 dark:hover:bg-%[1]s-900/30", color),
	}
}

var (
	statusStyles = map[model.Status]StatusStyle{
		model.StatusOnline:    newStatusStyle("在线", "green"),
		model.StatusPaused:    newStatusStyle("暂停", "yellow"),
		model.StatusPreparing: newStatusStyle("准备中", "yellow"),
		model.StatusOffline:   newStatusStyle("离线", "red"),
	}
	unknownStatusStyle = newStatusStyle("未知", "gray")

	typeLabels = map[model.MonitorType]string{
		model.MonitorTypeHTTPS:   "HTTPS",
		model.MonitorTypeKeyword: "Keyword",
		model.MonitorTypePing:    "PING",
		model.MonitorTypePort:    "Port",
	}
	defaultTypeLabel = "HTTP"

	errorMessages = map[int]string{
		333333: "连接超时",
		444444: "无响应",
		100001: "DNS解析失败",
		98:     "离线状态",
		99:     "失联状态",
	}
	defaultErrorMessage = "连接异常"
)

// StatusStyleFor 未知状态返回灰色样式
func StatusStyleFor(status model.Status) StatusStyle {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return unknownStatusStyle
}

func TypeLabel(t model.MonitorType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return defaultTypeLabel
}

func ErrorMessage(code int) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return defaultErrorMessage
}

// LogErrorMessage 读取日志 reason.code，缺失时返回默认信息
func LogErrorMessage(l model.Log) string {
	if l.Reason == nil {
		return defaultErrorMessage
	}
	code := l.Reason.Code.Float64()
	if math.IsNaN(code) || math.IsInf(code, 0) || code != math.Trunc(code) {
		return defaultErrorMessage
	}
	return ErrorMessage(int(code))
}

// Tables 导出给前端的全部查找表
type Tables struct {
	Statuses        map[model.Status]StatusStyle `json:"statuses"`
	UnknownStatus   StatusStyle                  `json:"unknownStatus"`
	Types           map[model.MonitorType]string `json:"types"`
	DefaultType     string                       `json:"defaultType"`
	Errors          map[int]string               `json:"errors"`
	DefaultError    string                       `json:"defaultError"`
	RefreshInterval int                          `json:"refreshInterval"` // 秒
}

// ExportTables 返回查找表的副本
func ExportTables() Tables {
	t := Tables{
		Statuses:        make(map[model.Status]StatusStyle, len(statusStyles)),
		UnknownStatus:   unknownStatusStyle,
		Types:           make(map[model.MonitorType]string, len(typeLabels)),
		DefaultType:     defaultTypeLabel,
		Errors:          make(map[int]string, len(errorMessages)),
		DefaultError:    defaultErrorMessage,
		RefreshInterval: int(RefreshInterval / time.Second),
	}
	for k, v := range statusStyles {
		t.Statuses[k] = v
	}
	for k, v := range typeLabels {
		t.Types[k] = v
	}
	for k, v := range errorMessages {
		t.Errors[k] = v
	}
	return t
}
