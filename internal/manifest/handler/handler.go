package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"manifest-service/internal/config"
	"manifest-service/internal/manifest/carrier"
	"manifest-service/internal/manifest/service"
)

// Process возвращает http.HandlerFunc, чтобы вы могли вызвать его как
// r.Post("/manifest/process", manHnd.Process(cfg, logger)) в роутере.
func Process(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Привяжем req_id из заголовка, если middleware его проставил
		reqID := r.Header.Get("X-Request-ID")
		log := logger
		if reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		// Движку нужен путь: Deutsche Post переоткрывает carrier sheet
		// как книгу, а не как поток.
		tmpPath, err := saveUpload(file, header.Filename)
		if err != nil {
			http.Error(w, "failed to store upload: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer os.Remove(tmpPath)

		engine := service.NewEngine(cfg.TemplateDir, cfg.OutputDir, cfg.MaxErrors)
		results := engine.ProcessSheet(tmpPath)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"results": results}); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Str("file", header.Filename).
			Int("results", len(results)).
			Dur("elapsed", time.Since(start)).
			Msg("manifest processing done")
	}
}

// Carriers отдаёт список поддерживаемых перевозчиков.
func Carriers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{"carriers": carrier.List()})
}

func saveUpload(src io.Reader, filename string) (string, error) {
	f, err := os.CreateTemp("", "carrier-sheet-*"+filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, src); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
