// Package report renders the self-contained HTML summary report: run totals,
// repeated items, yearly and monthly views with inline PNG charts, and the
// category table.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"fjacquet/purchases-csv/internal/aggregator"
	"fjacquet/purchases-csv/internal/categorizer"
	"fjacquet/purchases-csv/internal/fileutils"
	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/models"
)

// Default chart dimensions.
const (
	DefaultChartWidth  = 900
	DefaultChartHeight = 400
)

// Generator renders HTML summary reports.
type Generator struct {
	agg         *aggregator.Aggregator
	cat         *categorizer.Categorizer
	chartWidth  int
	chartHeight int
	logger      logging.Logger
}

// NewGenerator creates a report generator. Nil arguments fall back to the
// defaults.
func NewGenerator(agg *aggregator.Aggregator, cat *categorizer.Categorizer, logger logging.Logger) *Generator {
	if agg == nil {
		agg = aggregator.New()
	}
	if cat == nil {
		cat = categorizer.New()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		agg:         agg,
		cat:         cat,
		chartWidth:  DefaultChartWidth,
		chartHeight: DefaultChartHeight,
		logger:      logger,
	}
}

// WithChartSize overrides the chart dimensions.
func (g *Generator) WithChartSize(width, height int) *Generator {
	if width > 0 && height > 0 {
		g.chartWidth = width
		g.chartHeight = height
	}
	return g
}

// reportData is the template input.
type reportData struct {
	Summary     models.Summary
	TotalAmount string

	Repeated      []aggregator.ItemGroup
	RepeatedChart template.URL

	Yearly      []aggregator.YearGroup
	YearlyChart template.URL

	Monthly      []aggregator.MonthGroup
	MonthlyChart template.URL

	Categories []categorizer.CategorySummary
}

// Generate renders the report for a transaction list and returns the HTML
// bytes. It is a pure function of its input apart from PNG encoder
// internals; the tabular data is byte-stable across runs.
func (g *Generator) Generate(transactions []models.Transaction) ([]byte, error) {
	summary := models.Summarize(transactions)

	repeated := g.agg.RepeatedItems(transactions)
	yearly := g.agg.YearlyTotals(transactions)
	monthly := g.agg.MonthlyActivity(transactions)

	repeatedChart, err := chartDataURI("Repeated Purchases", itemBars(repeated), g.chartWidth, g.chartHeight)
	if err != nil {
		return nil, err
	}
	yearlyChart, err := chartDataURI("Spending per Year", yearBars(yearly), g.chartWidth, g.chartHeight)
	if err != nil {
		return nil, err
	}
	monthlyChart, err := chartDataURI("Spending per Month", monthBars(monthly), g.chartWidth, g.chartHeight)
	if err != nil {
		return nil, err
	}

	data := reportData{
		Summary:       summary,
		TotalAmount:   "$" + summary.TotalAmount.StringFixed(2),
		Repeated:      repeated,
		RepeatedChart: template.URL(repeatedChart),
		Yearly:        yearly,
		YearlyChart:   template.URL(yearlyChart),
		Monthly:       monthly,
		MonthlyChart:  template.URL(monthlyChart),
		Categories:    g.cat.Summarize(transactions),
	}

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"usd": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteReport renders the report and writes it to a file.
func (g *Generator) WriteReport(transactions []models.Transaction, filePath string) error {
	g.logger.Info("Writing HTML summary report",
		logging.Field{Key: logging.FieldReportFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	html, err := g.Generate(transactions)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFile(filePath, html); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}

	g.logger.Info("Successfully wrote HTML summary report",
		logging.Field{Key: logging.FieldReportFile, Value: filePath})
	return nil
}

func itemBars(groups []aggregator.ItemGroup) []BarValue {
	bars := make([]BarValue, 0, len(groups))
	for _, gr := range groups {
		bars = append(bars, BarValue{Label: gr.Name, Value: gr.Total})
	}
	return bars
}

func yearBars(groups []aggregator.YearGroup) []BarValue {
	bars := make([]BarValue, 0, len(groups))
	for _, gr := range groups {
		bars = append(bars, BarValue{Label: gr.Year, Value: gr.Total})
	}
	return bars
}

func monthBars(groups []aggregator.MonthGroup) []BarValue {
	bars := make([]BarValue, 0, len(groups))
	for _, gr := range groups {
		bars = append(bars, BarValue{Label: gr.Month, Value: gr.Total})
	}
	return bars
}
