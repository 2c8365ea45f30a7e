package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sefallone/Plan-eco/internal/loader"
	"github.com/sefallone/Plan-eco/internal/metrics"
	"github.com/sefallone/Plan-eco/internal/model"
)

// Each handler reads the dataset pointer once so a concurrent upload
// cannot mix two datasets in one response.

type recordView struct {
	Month  string               `json:"month"`
	Values map[string]model.Num `json:"values"`
}

func (s *Server) health(c *gin.Context) {
	ds := s.Dataset()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"source":   ds.Source(),
		"batch_id": ds.BatchID().String(),
		"records":  ds.Len(),
	})
}

func (s *Server) years(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"years": s.Dataset().Years()})
}

func (s *Server) records(c *gin.Context) {
	records, ok := filtered(c, s.Dataset())
	if !ok {
		return
	}
	cols := model.ValueColumns()
	out := make([]recordView, len(records))
	for i, r := range records {
		vals := make(map[string]model.Num, len(cols))
		for _, col := range cols {
			vals[col], _ = r.Value(col)
		}
		out[i] = recordView{Month: r.MonthLabel(), Values: vals}
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

func (s *Server) kpis(c *gin.Context) {
	ds := s.Dataset()
	year, ok := queryYear(c, ds)
	if !ok {
		return
	}
	snap, err := metrics.Summarize(ds.Records(), year)
	if err != nil {
		metricsError(c, ds, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": snap.Year, "months": snap.Months, "kpis": snap.KPIs()})
}

func (s *Server) growth(c *gin.Context) {
	ds := s.Dataset()
	year, ok := queryYear(c, ds)
	if !ok {
		return
	}
	g, err := metrics.Growth(ds.Records(), year)
	if err != nil {
		metricsError(c, ds, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (s *Server) categories(c *gin.Context) {
	type categoryView struct {
		Name    string   `json:"name"`
		Title   string   `json:"title"`
		Metrics []string `json:"metrics"`
	}
	out := make([]categoryView, len(model.AllCategories))
	for i, cat := range model.AllCategories {
		out[i] = categoryView{Name: cat.Name, Title: cat.Title, Metrics: cat.Metrics}
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func (s *Server) series(c *gin.Context) {
	records, ok := filtered(c, s.Dataset())
	if !ok {
		return
	}
	rows, err := metrics.Melt(records, c.Param("category"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": c.Param("category"), "rows": rows})
}

func (s *Server) warnings(c *gin.Context) {
	ws := s.Dataset().Warnings()
	out := make([]gin.H, len(ws))
	for i, w := range ws {
		out[i] = gin.H{"kind": w.Kind, "row": w.Row, "column": w.Column, "message": w.Message, "text": w.String()}
	}
	c.JSON(http.StatusOK, gin.H{"warnings": out})
}

func (s *Server) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds " + strconv.FormatInt(tooBig.Limit, 10) + " bytes"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	src, err := loader.SpreadsheetReader(f, fh.Filename, c.PostForm("sheet"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	ds, err := loader.Load(src, s.opts)
	if err != nil {
		s.log.Warn().Err(err).Str("file", fh.Filename).Msg("upload rejected, keeping current dataset")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s.dataset.Store(ds)
	sum := ds.Summary()
	s.log.Info().
		Str("source", sum.Source).
		Str("batch_id", sum.BatchID).
		Int("records", sum.Records).
		Int("warnings", sum.Warnings).
		Msg("dataset replaced")
	c.JSON(http.StatusOK, gin.H{
		"batch_id": sum.BatchID,
		"records":  sum.Records,
		"dropped":  sum.RowsDropped,
		"warnings": ds.Warnings(),
		"years":    ds.Years(),
	})
}

// queryYear reads ?year=; absent means the most recent year in ds.
func queryYear(c *gin.Context, ds *loader.Dataset) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return ds.Years()[0], true
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return 0, false
	}
	return y, true
}

// filtered returns all records of ds, or one year's when ?year= is given.
func filtered(c *gin.Context, ds *loader.Dataset) ([]model.MonthlyRecord, bool) {
	records := ds.Records()
	if c.Query("year") == "" {
		return records, true
	}
	year, ok := queryYear(c, ds)
	if !ok {
		return nil, false
	}
	rows := metrics.FilterYear(records, year)
	if len(rows) == 0 {
		metricsError(c, ds, &metrics.EmptyFilterError{Year: year})
		return nil, false
	}
	return rows, true
}

func metricsError(c *gin.Context, ds *loader.Dataset, err error) {
	var empty *metrics.EmptyFilterError
	if errors.As(err, &empty) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "years": ds.Years()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
