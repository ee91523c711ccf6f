package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/wassima-azzouzi/data-agent/internal/analyzer"
	"github.com/wassima-azzouzi/data-agent/internal/table"
)

func outlierTable() *table.Table {
	rows := [][]string{
		{"a", "1"}, {"b", "1"}, {"c", "1"}, {"d", "1"},
		{"e", "1"}, {"f", "1"}, {"g", "1"}, {"h", "1"},
		{"i", "1"}, {"j", "1"}, {"k", "1"}, {"l", "100"},
	}
	return table.New([]string{"label", "x"}, rows)
}

func analyzed(t *testing.T, tbl *table.Table) (*analyzer.Result, analyzer.Thresholds) {
	t.Helper()
	thr := analyzer.Defaults()
	res, err := analyzer.Analyze(tbl, thr)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return res, thr
}

func TestTextReportSections(t *testing.T) {
	tbl := outlierTable()
	res, _ := analyzed(t, tbl)
	txt := Text(tbl, res, "data.csv")

	for _, want := range []string{
		"DATA ANALYSIS REPORT",
		"Report ID: ",
		"File: data.csv",
		"STATUS: CRITICAL",
		"DETECTED ISSUES:",
		"anomalies in 'x'",
		"RECOMMENDATIONS:",
		"STATISTICS:",
		"- Rows: 12",
		"ANOMALY DETAILS:",
		"NUMERIC COLUMN DETAILS:",
		"COLUMN INFORMATION:",
		"- label: text",
	} {
		if !strings.Contains(txt, want) {
			t.Fatalf("report missing %q:\n%s", want, txt)
		}
	}
}

func TestTextReportNormal(t *testing.T) {
	tbl := table.New([]string{"v"}, [][]string{{"1"}, {"2"}, {"3"}})
	res, _ := analyzed(t, tbl)
	txt := Text(tbl, res, "ok.csv")
	if !strings.Contains(txt, "STATUS: NORMAL") {
		t.Fatalf("report missing status:\n%s", txt)
	}
	if !strings.Contains(txt, "None\n") {
		t.Fatalf("report should list no issues:\n%s", txt)
	}
	if !strings.Contains(txt, "Continue standard monitoring") {
		t.Fatalf("report missing recommendation:\n%s", txt)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tbl := outlierTable()
	res, _ := analyzed(t, tbl)
	b, err := JSON(res)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(b), `"urgency_level": "critical"`) {
		t.Fatalf("json missing level:\n%s", b)
	}
	var back analyzer.Result
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.UrgencyLevel != res.UrgencyLevel || back.Summary != res.Summary {
		t.Fatalf("round trip mismatch: %#v", back)
	}
	if len(back.Anomalies) != len(res.Anomalies) {
		t.Fatalf("anomalies = %#v", back.Anomalies)
	}
}

func TestFlaggedCSV(t *testing.T) {
	tbl := outlierTable()
	res, thr := analyzed(t, tbl)

	b, err := FlaggedCSV(tbl, res, thr)
	if err != nil {
		t.Fatalf("FlaggedCSV: %v", err)
	}
	r := csv.NewReader(bytes.NewReader(b))
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(recs) != 13 {
		t.Fatalf("rows = %d", len(recs))
	}
	header := recs[0]
	if len(header) != 3 || header[2] != "x_anomaly" {
		t.Fatalf("header = %#v", header)
	}
	flagged := 0
	for _, rec := range recs[1:] {
		if rec[2] == "true" {
			flagged++
		}
	}
	if flagged != res.Anomalies[0].Count {
		t.Fatalf("flagged = %d, want %d", flagged, res.Anomalies[0].Count)
	}
	last := recs[len(recs)-1]
	if last[1] != "100" || last[2] != "true" {
		t.Fatalf("last row = %#v", last)
	}
}

func TestFlaggedCSVNoAnomalies(t *testing.T) {
	tbl := table.New([]string{"v"}, [][]string{{"1"}, {"2"}, {"3"}})
	res, thr := analyzed(t, tbl)
	b, err := FlaggedCSV(tbl, res, thr)
	if err != nil {
		t.Fatalf("FlaggedCSV: %v", err)
	}
	recs, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(recs) != 4 || len(recs[0]) != 1 {
		t.Fatalf("recs = %#v", recs)
	}
}
