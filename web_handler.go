package main

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/report_generator/config"
	"github.com/pivolan/report_generator/domain/models"
	"github.com/pivolan/report_generator/plot"
)

// session holds one parsed upload between the stats view and the report
// download. Nothing outlives the cleanup loop.
type session struct {
	table    *models.Table
	profile  *models.Profile
	fileName string
	created  time.Time
}

var (
	sessionsMu sync.RWMutex
	sessions   = map[string]*session{}
)

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	tmpl := template.Must(template.ParseFiles("upload.html"))
	if err := tmpl.Execute(w, nil); err != nil {
		http.Error(w, "Error rendering upload form", http.StatusInternalServerError)
	}
}

func handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cfg := config.GetConfig()
	r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error uploading file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	uid := uuid.NewV4().String()
	dir := filepath.Join(cfg.UploadDir, uid)
	if err := os.MkdirAll(dir, 0755); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}
	filePath := filepath.Join(dir, filepath.Base(header.Filename))
	dst, err := os.Create(filePath)
	if err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}
	_, err = io.Copy(dst, file)
	dst.Close()
	if err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	// compressed uploads are unpacked before format dispatch
	filePath, err = unpackUpload(filePath)
	if err != nil {
		log.Printf("Error unpacking file: %v", err)
		http.Error(w, "Error unpacking archive", http.StatusBadRequest)
		return
	}

	table, profile, err := ingestFile(filePath)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	sessionsMu.Lock()
	sessions[uid] = &session{
		table:    table,
		profile:  profile,
		fileName: filepath.Base(filePath),
		created:  time.Now(),
	}
	sessionsMu.Unlock()

	http.Redirect(w, r, "/stats?id="+uid, http.StatusSeeOther)
}

// ingestFile runs the ingestion and profiling stages for one uploaded file.
func ingestFile(filePath string) (*models.Table, *models.Profile, error) {
	format, err := DetectFormat(filePath)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, &models.ParseError{Reason: "cannot open upload", Err: err}
	}
	defer f.Close()

	table, err := ParseTable(f, format)
	if err != nil {
		return nil, nil, err
	}
	return table, AnalyzeTable(table), nil
}

var statsPageTmpl = template.Must(template.New("stats").Parse(`<!DOCTYPE html>
<html>
<head><title>Analysis: {{.FileName}}</title></head>
<body>
<h1>Data Analysis: {{.FileName}}</h1>
<p>
<a href="/report?id={{.ID}}">Download PDF report</a> |
<a href="/charts?id={{.ID}}">Interactive charts</a> |
<a href="/">Upload another file</a>
</p>
<h2>Summary</h2>
<pre>{{.Summary}}</pre>
<h2>Numeric Column Statistics</h2>
{{if .Stats}}<pre>{{.Stats}}</pre>{{else}}<p>No numeric columns found in the dataset.</p>{{end}}
<h2>Missing Values</h2>
<pre>{{.Missing}}</pre>
<h2>Data Preview (First 10 Rows)</h2>
<pre>{{.Preview}}</pre>
{{range .HistCols}}<h2>Distribution of {{.}}</h2>
<img src="/hist?id={{$.ID}}&col={{.}}" alt="histogram of {{.}}">
{{end}}
</body>
</html>
`))

func handleStats(w http.ResponseWriter, r *http.Request) {
	id, s, ok := getSession(r)
	if !ok {
		http.Error(w, "Session not found or expired, upload the file again", http.StatusNotFound)
		return
	}

	statsText := ""
	if len(s.profile.NumericColumns) > 0 {
		statsText = GenerateStatsTable(s.profile)
	}
	histCols := s.profile.NumericColumns
	if len(histCols) > onScreenHistograms {
		histCols = histCols[:onScreenHistograms]
	}

	data := struct {
		ID       string
		FileName string
		Summary  string
		Stats    string
		Missing  string
		Preview  string
		HistCols []string
	}{
		ID:       id,
		FileName: s.fileName,
		Summary:  GenerateSummaryTable(s.profile),
		Stats:    statsText,
		Missing:  GenerateMissingTable(s.table, s.profile),
		Preview:  GeneratePreviewTable(s.table, previewRowLimit),
		HistCols: histCols,
	}
	if err := statsPageTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering stats page: %v", err)
	}
}

func handleHistogram(w http.ResponseWriter, r *http.Request) {
	_, s, ok := getSession(r)
	if !ok {
		http.Error(w, "Session not found or expired", http.StatusNotFound)
		return
	}
	col := r.URL.Query().Get("col")
	if !s.profile.IsNumericColumn(col) {
		http.Error(w, "Unknown numeric column", http.StatusNotFound)
		return
	}

	png, err := plot.DrawHistogram(NumericValues(s.table, col), "Distribution of "+col)
	if err != nil {
		writePipelineError(w, &models.RenderError{Chart: col, Err: err})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func handleCharts(w http.ResponseWriter, r *http.Request) {
	_, s, ok := getSession(r)
	if !ok {
		http.Error(w, "Session not found or expired", http.StatusNotFound)
		return
	}
	if err := RenderChartsPage(w, s.table, s.profile); err != nil {
		log.Printf("Error rendering charts page: %v", err)
	}
}

func handleReport(w http.ResponseWriter, r *http.Request) {
	_, s, ok := getSession(r)
	if !ok {
		http.Error(w, "Session not found or expired", http.StatusNotFound)
		return
	}

	charts, err := RenderCharts(s.table, s.profile)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	// compose fully in memory so a failed assembly never streams half a file
	buf := &bytes.Buffer{}
	if err := ComposeReport(s.table, s.profile, charts, buf); err != nil {
		writePipelineError(w, err)
		return
	}

	fileName := "report_" + time.Now().Format("20060102_150405") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Write(buf.Bytes())
}

func getSession(r *http.Request) (string, *session, bool) {
	id := r.URL.Query().Get("id")
	sessionsMu.RLock()
	s, ok := sessions[id]
	sessionsMu.RUnlock()
	return id, s, ok
}

// writePipelineError maps pipeline error kinds to HTTP responses: bad input
// is the uploader's problem, render/composition failures are ours.
func writePipelineError(w http.ResponseWriter, err error) {
	log.Printf("pipeline error: %v", err)

	var parseErr *models.ParseError
	var emptyErr *models.EmptyDatasetError
	switch {
	case errors.As(err, &parseErr), errors.As(err, &emptyErr):
		http.Error(w, "Error processing file: "+err.Error()+". Please make sure your file is properly formatted.", http.StatusBadRequest)
	default:
		http.Error(w, "Error generating report: "+err.Error(), http.StatusInternalServerError)
	}
}
