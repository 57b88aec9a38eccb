package list

import (
	"fmt"
	"sort"

	"github.com/gamemon/gamemon/internal/status"

	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

const (
	serverColumnWidth  = 20
	statusColumnWidth  = 12
	playersColumnWidth = 9
	uptimeColumnWidth  = 10
	logColumnMinWidth  = 20

	// left and right cell padding from table.DefaultStyles
	cellPadding = 2
)

func columns(logWidth int) []table.Column {
	return []table.Column{
		{Title: "SERVER", Width: serverColumnWidth},
		{Title: "STATUS", Width: statusColumnWidth},
		{Title: "PLAYERS", Width: playersColumnWidth},
		{Title: "UPTIME", Width: uptimeColumnWidth},
		{Title: "LAST LOG", Width: logWidth},
	}
}

func logWidthFor(total int) int {
	fixed := serverColumnWidth + statusColumnWidth + playersColumnWidth + uptimeColumnWidth
	return max(logColumnMinWidth, total-fixed-cellPadding*5)
}

// sortedKeys orders servers by their report key so rows do not jump between refreshes.
func sortedKeys(report status.Report) []string {
	keys := lo.Keys(report.Servers)
	sort.Strings(keys)
	return keys
}

func rows(report status.Report, keys []string, logWidth int) []table.Row {
	return lo.Map(keys, func(k string, _ int) table.Row {
		return toTableRow(k, report.Servers[k], logWidth)
	})
}

func toTableRow(key string, r status.Record, logWidth int) table.Row {
	return table.Row{
		runewidth.Truncate(key, serverColumnWidth, "…"),
		stateText(r),
		playersText(r),
		lo.FromPtrOr(r.Uptime, "-"),
		runewidth.Truncate(lastLog(r), logWidth, "…"),
	}
}

func stateText(r status.Record) string {
	if r.Online {
		return "online"
	}
	return r.Status
}

func playersText(r status.Record) string {
	switch {
	case r.Players == nil:
		return "-"
	case r.MaxPlayers != nil:
		return fmt.Sprintf("%d/%d", *r.Players, *r.MaxPlayers)
	default:
		return fmt.Sprintf("%d", *r.Players)
	}
}

func lastLog(r status.Record) string {
	if r.LastChat != "" {
		return r.LastChat
	}
	if len(r.Logs) == 0 {
		return ""
	}
	return r.Logs[len(r.Logs)-1]
}
