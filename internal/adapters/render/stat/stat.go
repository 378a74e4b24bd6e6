package stat

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
)

var _ ports.StatRenderer = Render

type field struct {
	name  string
	value string
}

// Render formats stat one field per line, zxids in hex and times in UTC.
func Render(stat domain.Stat) string {
	fields := []field{
		{"cZxid", zxid(stat.Czxid)},
		{"ctime", millis(stat.Ctime)},
		{"mZxid", zxid(stat.Mzxid)},
		{"mtime", millis(stat.Mtime)},
		{"pZxid", zxid(stat.Pzxid)},
		{"cversion", fmt.Sprint(stat.Cversion)},
		{"dataVersion", fmt.Sprint(stat.Version)},
		{"aclVersion", fmt.Sprint(stat.Aversion)},
		{"ephemeralOwner", zxid(stat.EphemeralOwner)},
		{"dataLength", fmt.Sprint(stat.DataLength)},
		{"numChildren", fmt.Sprint(stat.NumChildren)},
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.name))
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%-*s = %s", width, f.name, f.value))
	}
	return strings.Join(lines, "\n")
}

func zxid(v int64) string {
	return fmt.Sprintf("0x%x", v)
}

func millis(v int64) string {
	if v == 0 {
		return "0"
	}
	return time.UnixMilli(v).UTC().Format(time.RFC3339Nano)
}
