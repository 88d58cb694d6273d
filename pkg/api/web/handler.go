// Package web serves the calculator page. The page is deliberately plain:
// a form, three price readouts, an explanation panel, and a canvas bar
// chart fed by the compute endpoint.
package web

import (
	"html/template"
	"net/http"

	"dividend_valuation/pkg/core/preset"
)

// Handler serves the single-page calculator UI.
type Handler struct {
	tmpl *template.Template
}

// NewHandler parses the embedded page template.
func NewHandler() *Handler {
	return &Handler{tmpl: template.Must(template.New("index").Parse(indexHTML))}
}

// HandleIndex is GET /.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.tmpl.Execute(w, preset.Default())
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dividend Discount Model Calculator</title>
<style>
  body { font-family: Georgia, serif; max-width: 880px; margin: 2em auto; color: #222; }
  fieldset { border: 1px solid #bbb; margin-bottom: 1em; }
  label { display: inline-block; width: 220px; }
  input { width: 90px; }
  table { border-collapse: collapse; margin: 1em 0; }
  td, th { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
  th:first-child, td:first-child { text-align: left; }
  .invalid { color: #a00; }
  #explainer { background: #f7f5ef; padding: 0 1em; border: 1px solid #ddd; }
</style>
</head>
<body>
<h1>Dividend Discount Model Calculator</h1>
<p>Enter the dividend and rate assumptions below. Rates are percentages
(10 means 10%).</p>

<fieldset>
<legend>Inputs</legend>
<p><label for="d0">Most recent dividend (D0)</label>
   <input id="d0" type="number" step="0.01" value="{{.D0}}"></p>
<p><label for="required_return_pct">Required return (%)</label>
   <input id="required_return_pct" type="number" step="0.1" value="{{.RequiredReturnPct}}"></p>
<p><label for="constant_growth_pct">Constant growth (%)</label>
   <input id="constant_growth_pct" type="number" step="0.1" value="{{.ConstantGrowthPct}}"></p>
<p><label for="short_term_growth_pct">Short-term growth (%)</label>
   <input id="short_term_growth_pct" type="number" step="0.1" value="{{.ShortTermGrowthPct}}"></p>
<p><label for="long_term_growth_pct">Long-term growth (%)</label>
   <input id="long_term_growth_pct" type="number" step="0.1" value="{{.LongTermGrowthPct}}"></p>
<p><label for="short_years">High-growth years</label>
   <input id="short_years" type="number" step="1" value="{{.ShortYears}}"></p>
<p><label for="presets">Preset scenario</label>
   <select id="presets"></select></p>
<p id="errors" class="invalid"></p>
</fieldset>

<table>
<tr><th>Model</th><th>Theoretical price</th></tr>
<tr><td>No growth</td><td id="price_no_growth">—</td></tr>
<tr><td>Constant growth</td><td id="price_constant_growth">—</td></tr>
<tr><td>Two-stage growth</td><td id="price_changing_growth">—</td></tr>
</table>

<canvas id="chart" width="840" height="300"></canvas>
<div id="explainer"></div>

<script>
const FIELDS = ["d0","required_return_pct","constant_growth_pct",
                "short_term_growth_pct","long_term_growth_pct","short_years"];
const COLORS = {no_growth: "#7a9e9f", constant_growth: "#b8860b", changing_growth: "#4f6d7a"};

function readInputs() {
  const req = {};
  for (const f of FIELDS) {
    req[f] = f === "short_years"
      ? parseInt(document.getElementById(f).value || "0", 10)
      : parseFloat(document.getElementById(f).value || "0");
  }
  return req;
}

async function recompute() {
  const resp = await fetch("/api/valuation/compute", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(readInputs())
  });
  const data = await resp.json();
  for (const key of ["price_no_growth","price_constant_growth","price_changing_growth"]) {
    const cell = document.getElementById(key);
    cell.textContent = data.formatted[key];
    cell.className = data.formatted[key] === "Invalid" ? "invalid" : "";
  }
  const errs = data.result.errors || {};
  document.getElementById("errors").textContent = Object.values(errs).join("; ");
  drawChart(data.result.data, data.labels);
}

function drawChart(rows, labels) {
  const canvas = document.getElementById("chart");
  const ctx = canvas.getContext("2d");
  ctx.clearRect(0, 0, canvas.width, canvas.height);

  let max = 1, min = -1;
  for (const row of rows) {
    for (const k of Object.keys(COLORS)) {
      const v = row[k];
      if (v !== null && v !== undefined) { max = Math.max(max, v); min = Math.min(min, v); }
    }
  }
  const span = max - min, h = canvas.height - 30, zero = 10 + (max / span) * (h - 10);
  const groupW = canvas.width / rows.length, barW = groupW / 4;

  rows.forEach((row, i) => {
    let x = i * groupW + barW / 2;
    for (const k of Object.keys(COLORS)) {
      const v = row[k];
      if (v !== null && v !== undefined) {
        const barH = (v / span) * (h - 10);
        ctx.fillStyle = COLORS[k];
        ctx.fillRect(x, Math.min(zero, zero - barH), barW - 2, Math.abs(barH));
      }
      x += barW;
    }
    ctx.fillStyle = "#444";
    ctx.font = "10px sans-serif";
    ctx.fillText(labels[i], i * groupW + 4, canvas.height - 6);
  });
  ctx.strokeStyle = "#888";
  ctx.beginPath(); ctx.moveTo(0, zero); ctx.lineTo(canvas.width, zero); ctx.stroke();
}

async function loadPresets() {
  const resp = await fetch("/api/presets");
  const data = await resp.json();
  const sel = document.getElementById("presets");
  for (const p of data.presets) {
    const opt = document.createElement("option");
    opt.value = p.name;
    opt.textContent = p.name;
    if (p.name === data.default) opt.selected = true;
    sel.appendChild(opt);
  }
  sel.addEventListener("change", async () => {
    const r = await fetch("/api/presets/get?name=" + encodeURIComponent(sel.value));
    const p = await r.json();
    for (const f of FIELDS) document.getElementById(f).value = p[f];
    recompute();
  });
}

async function loadExplainers() {
  const panel = document.getElementById("explainer");
  for (const model of ["no_growth","constant_growth","changing_growth"]) {
    const resp = await fetch("/api/docs?model=" + model);
    const data = await resp.json();
    panel.innerHTML += data.html;
  }
}

for (const f of FIELDS) document.getElementById(f).addEventListener("input", recompute);
loadPresets();
loadExplainers();
recompute();
</script>
</body>
</html>
`
