package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"manifest-service/internal/fileio"
	"manifest-service/internal/manifest/carrier"
	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// Engine — оркестратор: carrier sheet → стратегия → шаблон → выходные файлы.
type Engine struct {
	templateDir string
	outputDir   string
	maxErrors   int
}

func NewEngine(templateDir, outputDir string, maxErrors int) *Engine {
	return &Engine{
		templateDir: templateDir,
		outputDir:   outputDir,
		maxErrors:   maxErrors,
	}
}

var nameSanitizer = strings.NewReplacer(" ", "_", "/", "-")

func failure(carrierName, po string, failed int, errs ...string) model.ProcessingResult {
	return model.ProcessingResult{
		Carrier:       carrierName,
		RecordsFailed: failed,
		Errors:        errs,
		PONumber:      po,
	}
}

// ProcessSheet обрабатывает carrier sheet целиком. Любая ошибка уровня
// прогона возвращается как неуспешный ProcessingResult, не как error:
// HTTP-слою всегда есть что отдать.
func (e *Engine) ProcessSheet(path string) []model.ProcessingResult {
	log.Info().Str("file", filepath.Base(path)).Msg("loading carrier sheet")

	f, err := os.Open(path)
	if err != nil {
		return []model.ProcessingResult{failure("Unknown", "", 0,
			fmt.Sprintf("Failed to load carrier sheet: %v", err))}
	}
	rows, err := fileio.ReadAnyRows(f, filepath.Base(path))
	f.Close()
	if err != nil {
		return []model.ProcessingResult{failure("Unknown", "", 0,
			fmt.Sprintf("Failed to load carrier sheet: %v", err))}
	}

	sheet, err := ParseCarrierSheet(rows)
	if err != nil {
		return []model.ProcessingResult{failure("Unknown", "", 0,
			fmt.Sprintf("Failed to load carrier sheet: %v", err))}
	}

	log.Info().
		Str("carrier", sheet.CarrierName).
		Str("po", sheet.PONumber).
		Int("records", len(sheet.Records)).
		Msg("carrier sheet loaded")

	// Пустой carrier sheet — фатально: прогон отменяется до выбора стратегии.
	if len(sheet.Records) == 0 {
		log.Warn().Str("carrier", sheet.CarrierName).Msg("zero records detected, processing cancelled")
		return []model.ProcessingResult{failure(sheet.CarrierName, sheet.PONumber, 0,
			"Carrier sheet contains zero records - processing cancelled")}
	}

	// Deutsche Post не размещает записи: carrier sheet обрабатывается сам.
	if strings.Contains(strings.ToLower(sheet.CarrierName), "deutsche") {
		return []model.ProcessingResult{e.processDeutschePost(path)}
	}

	return []model.ProcessingResult{e.processCarrier(sheet)}
}

func (e *Engine) processCarrier(sheet *CarrierSheet) model.ProcessingResult {
	strategy, err := carrier.ForName(sheet.CarrierName)
	if err != nil {
		var unsupported *carrier.UnsupportedCarrierError
		if errors.As(err, &unsupported) {
			log.Error().Str("carrier", sheet.CarrierName).Msg("unsupported carrier")
		}
		return failure(sheet.CarrierName, sheet.PONumber, len(sheet.Records), err.Error())
	}

	templatePath := filepath.Join(e.templateDir, strategy.TemplateFile())
	if _, err := os.Stat(templatePath); err != nil {
		return failure(sheet.CarrierName, sheet.PONumber, len(sheet.Records),
			fmt.Sprintf("Template not found: %s", templatePath))
	}
	log.Info().Str("template", strategy.TemplateFile()).Msg("loading template")

	st, err := e.openTemplate(templatePath)
	if err != nil {
		return failure(sheet.CarrierName, sheet.PONumber, len(sheet.Records),
			fmt.Sprintf("Failed to open template: %v", err))
	}

	idx, err := strategy.BuildIndex(st)
	if err != nil {
		return failure(sheet.CarrierName, sheet.PONumber, len(sheet.Records),
			fmt.Sprintf("Failed to build country index: %v", err))
	}
	log.Info().Int("countries", idx.Len()).Msg("country index built")

	shipmentDate := time.Now().Format("2006-01-02")
	strategy.SetMetadata(st, sheet.PONumber, shipmentDate)

	session := NewSession(strategy, idx, st, e.maxErrors)
	session.Run(sheet.Records)

	result := model.ProcessingResult{
		Carrier:          sheet.CarrierName,
		RecordsProcessed: session.Processed(),
		RecordsFailed:    session.Failed(),
		Errors:           session.Errors(),
		Success:          session.Succeeded(),
		PONumber:         sheet.PONumber,
	}

	timestamp := time.Now().Format("20060102_150405")
	safeCarrier := nameSanitizer.Replace(sheet.CarrierName)

	switch out := strategy.(type) {
	case carrier.FileEmitter:
		files, err := out.EmitFiles(e.outputDir, session.Lines())
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.Success = false
			return result
		}
		if len(files) == 0 {
			result.Errors = append(result.Errors, "No upload files generated")
			result.Success = false
			return result
		}
		result.OutputFile = files[0]
		result.AdditionalFiles = files[1:]

	case carrier.OrderWriter:
		if err := out.WriteOrders(st, session.Lines()); err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.Success = false
			return result
		}
		name := fmt.Sprintf("%s_Upload_%s_%s.xlsx", safeCarrier, sheet.PONumber, timestamp)
		result.OutputFile = filepath.Join(e.outputDir, name)
		if err := e.save(st, result.OutputFile); err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.Success = false
			return result
		}

	default:
		name := fmt.Sprintf("%s_%s_%s.xlsx", safeCarrier, sheet.PONumber, timestamp)
		result.OutputFile = filepath.Join(e.outputDir, name)
		if err := e.save(st, result.OutputFile); err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.Success = false
			return result
		}
	}

	log.Info().
		Str("output", filepath.Base(result.OutputFile)).
		Int("processed", result.RecordsProcessed).
		Int("failed", result.RecordsFailed).
		Bool("success", result.Success).
		Msg("carrier processed")
	return result
}

// processDeutschePost: извлечь сводку, убрать лист (EMB) Manifest,
// сохранить книгу в выходной каталог.
func (e *Engine) processDeutschePost(path string) model.ProcessingResult {
	dp := carrier.NewDeutschePost()

	st, err := store.OpenXLSX(path)
	if err != nil {
		return failure("Deutsche Post", "", 0, err.Error())
	}
	data := dp.ExtractData(st)
	st.DeleteSheet("(EMB) Manifest")

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := fmt.Sprintf("%s_%s.xlsx", base, time.Now().Format("20060102_150405"))
	outputPath := filepath.Join(e.outputDir, name)
	if err := st.SaveAs(outputPath); err != nil {
		return failure("Deutsche Post", data.PONumber, 0, err.Error())
	}

	log.Info().
		Str("po", data.PONumber).
		Int("items", data.TotalItems).
		Float64("weight", data.TotalWeight).
		Str("itemFormat", data.ItemFormat).
		Msg("deutsche post summary extracted")

	return model.ProcessingResult{
		Carrier:          "Deutsche Post",
		OutputFile:       outputPath,
		RecordsProcessed: data.TotalItems,
		Success:          true,
		PONumber:         data.PONumber,
		Summary:          &data,
	}
}

func (e *Engine) openTemplate(path string) (store.Store, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return fileio.OpenXLSStore(path)
	}
	return store.OpenXLSX(path)
}

// save пишет книгу на диск. Ин-memory хранилища (справочники) не
// сериализуются — для них сохранять нечего.
func (e *Engine) save(st store.Store, path string) error {
	x, ok := st.(*store.XLSXStore)
	if !ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return x.SaveAs(path)
}
