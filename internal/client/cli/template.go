package cli

import (
	"text/template"
	"time"
)

// formatTime форматирует время в локальной зоне, "-" для нулевого
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

var templateFuncs = template.FuncMap{"time": formatTime}

const documentTemplate = `=== {{.Path}} ===
Revision: {{.Revision}}{{if .IsDirty}} (not synchronized){{end}}
Modified: {{time .ModifiedAt}}{{if .NodeID}} by {{.NodeID}}{{end}}
---
{{.Content}}
---
`

const conflictTemplate = `{{.Path}}
  local:    {{.Local.Revision}}{{if .Local.Deleted}} (Deleted){{end}}, {{time .Local.ModifiedAt}}
  remote:   {{.Remote.Revision}}{{if .Remote.Deleted}} (Deleted){{end}}, {{time .Remote.ModifiedAt}}{{if .Remote.NodeID}} by {{.Remote.NodeID}}{{end}}
  deferred: {{time .DetectedAt}} ({{.Cause}}, attempts: {{.Attempts}})
`

var (
	documentTmpl = template.Must(template.New("document").Funcs(templateFuncs).Parse(documentTemplate))
	conflictTmpl = template.Must(template.New("conflict").Funcs(templateFuncs).Parse(conflictTemplate))
)
