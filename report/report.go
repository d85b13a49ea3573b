// Package report renders the history store into a static HTML dashboard
// after each cycle. The web server serves the generated file as-is.
package report

import (
	"fmt"
	"html/template"
	"os"

	"menuwatch/models"
)

// Generator writes the dashboard file.
type Generator struct {
	path string
	tmpl *template.Template
}

// NewGenerator builds a generator targeting the given file path.
func NewGenerator(path string) *Generator {
	return &Generator{
		path: path,
		tmpl: template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"price": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		}).Parse(dashboardTemplate)),
	}
}

// Generate renders the history into the dashboard file.
func (g *Generator) Generate(h *models.History) error {
	f, err := os.Create(g.path)
	if err != nil {
		return fmt.Errorf("create report file %s: %w", g.path, err)
	}
	defer f.Close()

	if err := g.tmpl.Execute(f, h); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

const dashboardTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Monitor de Precios - Dashboard</title>
<style>
  :root {
    --bg-primary: #0f0f23;
    --bg-card: #16213e;
    --accent: #e94560;
    --text-primary: #eaeaea;
    --text-secondary: #a0a0a0;
    --success: #00d26a;
    --warning: #ffc107;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: 'Segoe UI', system-ui, sans-serif;
    background: var(--bg-primary);
    color: var(--text-primary);
    min-height: 100vh;
    padding: 20px;
  }
  .container { max-width: 1200px; margin: 0 auto; }
  header {
    text-align: center;
    margin-bottom: 40px;
    padding: 30px;
    background: var(--bg-card);
    border-radius: 16px;
  }
  h1 { font-size: 2.2rem; color: var(--accent); margin-bottom: 10px; }
  .subtitle { color: var(--text-secondary); }
  .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(340px, 1fr)); gap: 20px; }
  .card { background: var(--bg-card); border-radius: 12px; padding: 24px; }
  .card h2 { font-size: 1.2rem; margin-bottom: 12px; }
  .meta { color: var(--text-secondary); font-size: 0.85rem; margin-bottom: 12px; }
  .promo { color: var(--warning); font-size: 0.9rem; margin-bottom: 12px; }
  table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
  td { padding: 6px 4px; border-bottom: 1px solid rgba(255,255,255,0.06); }
  td.price { text-align: right; color: var(--success); white-space: nowrap; }
</style>
</head>
<body>
<div class="container">
  <header>
    <h1>🍗 Monitor de Precios</h1>
    <p class="subtitle">Última actualización: {{.LastUpdated.Format "2006-01-02 15:04:05"}}</p>
  </header>
  <div class="grid">
    {{range $name, $rec := .Competitors}}
    <div class="card">
      <h2>{{$name}}</h2>
      <p class="meta">{{$rec.ProductCount}} productos &middot; revisado {{$rec.LastChecked.Format "2006-01-02 15:04"}}</p>
      {{if $rec.Promotions}}<p class="promo">🏷️ {{range $i, $p := $rec.Promotions}}{{if $i}}, {{end}}{{$p}}{{end}}</p>{{end}}
      <table>
        {{range $rec.Products}}
        <tr>
          <td>{{.Name}}</td>
          <td class="price">{{price .Price}}</td>
        </tr>
        {{end}}
      </table>
    </div>
    {{end}}
  </div>
</div>
</body>
</html>
`
