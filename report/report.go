// Package report 将处理后的监控数据渲染为 HTML 状态报告
package report

import (
	"bytes"
	"html/template"
	"time"

	"uptime-board/display"
	"uptime-board/model"
)

// 颜色族对应的十六进制色值
var colorHex = map[string]string{
	"green":  "#2ecc71",
	"yellow": "#f1c40f",
	"red":    "#e74c3c",
	"gray":   "#94a3b8",
}

// Data 报告模板数据
type Data struct {
	Title         string
	GeneratedAt   string
	TotalCount    int
	UptimePercent string
	OfflineCount  int
	OfflineColor  string
	Monitors      []Row
}

// Row 单个监控的报告行
type Row struct {
	Name        string
	URL         string
	Type        string
	Uptime      string
	AvgResponse string
	Summary     string
	Status      string
	Color       string
	UptimeColor string
	RowBg       string
}

const statusReportTemplate = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f6f9fc; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;">
	<div style="max-width: 720px; margin: 20px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.05);">
		<!-- Header -->
		<div style="background-color: #2ecc71; padding: 30px 40px; text-align: center;">
			<h1 style="margin: 0; color: #ffffff; font-size: 24px; font-weight: 700;">{{.Title}}</h1>
			<p style="margin: 10px 0 0; color: rgba(255,255,255,0.9); font-size: 14px;">{{.GeneratedAt}}</p>
		</div>

		<!-- Summary Cards -->
		<div style="padding: 30px 40px; background-color: #f8f9fa; border-bottom: 1px solid #edf2f7;">
			<div style="display: grid; grid-template-columns: repeat(3, 1fr); gap: 15px; text-align: center;">
				<div style="background: white; padding: 15px; border-radius: 8px; border: 1px solid #e2e8f0;">
					<div style="font-size: 12px; color: #64748b; font-weight: 600;">监控总数</div>
					<div style="font-size: 24px; font-weight: 800; color: #1e293b; margin-top: 5px;">{{.TotalCount}}</div>
				</div>
				<div style="background: white; padding: 15px; border-radius: 8px; border: 1px solid #e2e8f0;">
					<div style="font-size: 12px; color: #64748b; font-weight: 600;">30天平均在线率</div>
					<div style="font-size: 24px; font-weight: 800; color: #2ecc71; margin-top: 5px;">{{.UptimePercent}}</div>
				</div>
				<div style="background: white; padding: 15px; border-radius: 8px; border: 1px solid #e2e8f0;">
					<div style="font-size: 12px; color: #64748b; font-weight: 600;">离线服务</div>
					<div style="font-size: 24px; font-weight: 800; color: {{.OfflineColor}}; margin-top: 5px;">{{.OfflineCount}}</div>
				</div>
			</div>
		</div>

		<!-- Detail List -->
		<div style="padding: 30px 40px;">
			<table style="width: 100%; border-collapse: collapse;">
				<thead style="background-color: #f8f9fa; color: #64748b; font-size: 12px; text-align: left;">
					<tr>
						<th style="padding: 12px 15px;">服务名称</th>
						<th style="padding: 12px 15px; text-align: center;">在线率</th>
						<th style="padding: 12px 15px; text-align: center;">平均延迟</th>
						<th style="padding: 12px 15px; text-align: right;">状态</th>
					</tr>
				</thead>
				<tbody style="font-size: 14px; color: #334155;">
					{{range .Monitors}}
					<tr style="background-color: {{.RowBg}};">
						<td style="padding: 12px 15px; border-bottom: 1px solid #f1f5f9;">
							<div style="font-weight: 600;">{{if .URL}}<a href="{{.URL}}" style="color: #1e293b; text-decoration: none;">{{.Name}}</a>{{else}}{{.Name}}{{end}}</div>
							<div style="font-size: 11px; color: #94a3b8; margin-top: 2px;">{{.Type}} &bull; {{.Summary}}</div>
						</td>
						<td style="padding: 12px 15px; border-bottom: 1px solid #f1f5f9; text-align: center; font-family: monospace; font-weight: 600; color: {{.UptimeColor}};">{{.Uptime}}</td>
						<td style="padding: 12px 15px; border-bottom: 1px solid #f1f5f9; text-align: center; font-family: monospace;">{{.AvgResponse}}</td>
						<td style="padding: 12px 15px; text-align: right; border-bottom: 1px solid #f1f5f9;">
							<span style="display: inline-block; padding: 4px 10px; border-radius: 20px; font-size: 12px; font-weight: 600; color: {{.Color}};">{{.Status}}</span>
						</td>
					</tr>
					{{end}}
				</tbody>
			</table>
		</div>
	</div>
</body>
</html>
`

var statusReport = template.Must(template.New("status_report").Parse(statusReportTemplate))

// Build 由已排序的卡片生成报告数据
func Build(title string, cards []display.Card, t time.Time) Data {
	data := Data{
		Title:        title,
		GeneratedAt:  t.Format("2006-01-02 15:04:05"),
		TotalCount:   len(cards),
		OfflineColor: colorHex["green"],
		Monitors:     make([]Row, 0, len(cards)),
	}

	var sum float64
	withData := 0
	for i, c := range cards {
		uptime := 0.0
		if c.Stats != nil {
			uptime = c.Stats.Uptime
		}
		// 没有可用率数据的监控不计入总体平均
		if c.ValidDays > 0 {
			sum += uptime
			withData++
		}
		if c.Status == model.StatusOffline {
			data.OfflineCount++
		}

		row := Row{
			Name:        c.Name,
			URL:         c.URL,
			Type:        c.Type,
			Uptime:      c.Uptime,
			AvgResponse: c.AvgResponseTime,
			Summary:     c.DowntimeSummary,
			Status:      c.Style.Text,
			Color:       hexFor(c.Style.Color),
			UptimeColor: colorHex["green"],
			RowBg:       "#ffffff",
		}
		if uptime < 99 {
			row.UptimeColor = colorHex["red"]
		}
		if i%2 == 1 {
			row.RowBg = "#fcfcfd"
		}
		data.Monitors = append(data.Monitors, row)
	}

	mean := 0.0
	if withData > 0 {
		mean = sum / float64(withData)
	}
	data.UptimePercent = display.FormatUptime(mean)
	if data.OfflineCount > 0 {
		data.OfflineColor = colorHex["red"]
	}
	return data
}

func hexFor(color string) string {
	if h, ok := colorHex[color]; ok {
		return h
	}
	return colorHex["gray"]
}

// Render 渲染 HTML 报告
func Render(data Data) (string, error) {
	var buf bytes.Buffer
	if err := statusReport.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
