package server

import (
	"sync/atomic"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sefallone/Plan-eco/internal/loader"
)

// maxUploadBytes caps the request body of a spreadsheet upload.
const maxUploadBytes = 16 << 20

// Server serves one dataset at a time over JSON. Uploading a new
// spreadsheet swaps the dataset atomically; a failed upload keeps the
// current one.
type Server struct {
	log       zerolog.Logger
	opts      loader.Options
	maxUpload int64
	dataset   atomic.Pointer[loader.Dataset]
}

// New creates a Server around an already loaded dataset.
func New(log zerolog.Logger, ds *loader.Dataset, opts loader.Options) *Server {
	s := &Server{log: log, opts: opts, maxUpload: maxUploadBytes}
	s.dataset.Store(ds)
	return s
}

// Dataset returns the dataset currently served.
func (s *Server) Dataset() *loader.Dataset {
	return s.dataset.Load()
}

// Router builds the gin engine with logging, recovery and CORS.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = s.maxUpload
	r.Use(requestLogger(s.log))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/years", s.years)
	api.GET("/records", s.records)
	api.GET("/kpis", s.kpis)
	api.GET("/growth", s.growth)
	api.GET("/categories", s.categories)
	api.GET("/series/:category", s.series)
	api.GET("/warnings", s.warnings)
	api.POST("/dataset", s.upload)
	return r
}
