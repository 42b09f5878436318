package report

// reportTemplate is the self-contained summary page. Sections are
// collapsible <details> blocks, open by default; charts are inline base64
// PNG images so the file has no external references.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Purchase History Summary</title>
<style>
  body { font-family: -apple-system, "Helvetica Neue", Arial, sans-serif; margin: 2em auto; max-width: 960px; color: #1d1d1f; }
  h1 { font-size: 1.6em; }
  summary { font-size: 1.2em; font-weight: 600; cursor: pointer; margin: 0.8em 0; }
  table { border-collapse: collapse; margin: 1em 0; width: 100%; }
  th, td { border: 1px solid #d2d2d7; padding: 6px 12px; text-align: left; }
  th { background: #f5f5f7; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .totals { display: flex; gap: 2em; margin: 1em 0; }
  .totals div { background: #f5f5f7; border-radius: 8px; padding: 12px 20px; }
  .totals .value { font-size: 1.4em; font-weight: 700; }
  img.chart { max-width: 100%; margin: 1em 0; }
</style>
</head>
<body>
<h1>Purchase History Summary</h1>

<div class="totals">
  <div><div class="value">{{.Summary.Total}}</div>transactions</div>
  <div><div class="value">{{.Summary.Subscriptions}}</div>subscriptions</div>
  <div><div class="value">{{.Summary.OneTime}}</div>one-time purchases</div>
  <div><div class="value">{{.TotalAmount}}</div>total spent</div>
</div>

<details open>
  <summary>Repeated purchases</summary>
  {{if .Repeated}}
  <table>
    <tr><th>Item</th><th>Count</th><th>Total</th></tr>
    {{range .Repeated}}
    <tr><td>{{.Name}}</td><td class="num">{{.Count}}</td><td class="num">{{usd .Total}}</td></tr>
    {{end}}
  </table>
  {{if .RepeatedChart}}<img class="chart" src="{{.RepeatedChart}}" alt="Repeated purchases chart">{{end}}
  {{else}}
  <p>No item was purchased more than once.</p>
  {{end}}
</details>

<details open>
  <summary>Spending per year</summary>
  <table>
    <tr><th>Year</th><th>Total</th></tr>
    {{range .Yearly}}
    <tr><td>{{.Year}}</td><td class="num">{{usd .Total}}</td></tr>
    {{end}}
  </table>
  {{if .YearlyChart}}<img class="chart" src="{{.YearlyChart}}" alt="Yearly spending chart">{{end}}
</details>

<details open>
  <summary>Monthly activity</summary>
  <table>
    <tr><th>Month</th><th>Purchases</th><th>Total</th></tr>
    {{range .Monthly}}
    <tr><td>{{.Month}}</td><td class="num">{{.Count}}</td><td class="num">{{usd .Total}}</td></tr>
    {{end}}
  </table>
  {{if .MonthlyChart}}<img class="chart" src="{{.MonthlyChart}}" alt="Monthly activity chart">{{end}}
</details>

<details open>
  <summary>Categories</summary>
  <table>
    <tr><th>Category</th><th>Purchases</th><th>Total</th></tr>
    {{range .Categories}}
    <tr><td>{{.Name}}</td><td class="num">{{.Count}}</td><td class="num">{{usd .Total}}</td></tr>
    {{end}}
  </table>
</details>

</body>
</html>
`
