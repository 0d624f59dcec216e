// Package dataset carrega o arquivo de vendas e o transforma na tabela de
// transações usada pelo dashboard
package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/utils"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	PolicyDrop = "drop"
	PolicyFail = "fail"
)

const (
	columnDate       = "Date"
	columnTime       = "Time"
	columnCashType   = "cash_type"
	columnMoney      = "money"
	columnCoffeeName = "coffee_name"
	columnHour       = "hour_of_day"
	columnWeekday    = "Weekdaysort"
	columnMonth      = "Monthsort"
	columnTimeOfDay  = "Time_of_Day"
)

var requiredColumns = []string{columnDate, columnTime, columnCashType, columnMoney, columnCoffeeName}

var (
	dateLayouts = []string{time.DateOnly, "1/2/2006"}
	timeLayouts = []string{time.TimeOnly, "15:04"}
)

// Loader lê o dataset do disco. RowPolicy define o que acontece com linhas
// inválidas: "drop" rejeita e segue, "fail" aborta a carga.
type Loader struct {
	RowPolicy string
	Sheet     string
	now       func() time.Time
}

func NewLoader(rowPolicy, sheet string) *Loader {
	if rowPolicy == "" {
		rowPolicy = PolicyDrop
	}

	return &Loader{
		RowPolicy: rowPolicy,
		Sheet:     sheet,
		now:       time.Now,
	}
}

// Load lê o arquivo, valida cada linha e devolve as transações aceitas
// junto com o relatório da carga
func (l *Loader) Load(ctx context.Context, path string) ([]*domain.Transaction, *domain.LoadReport, error) {
	if l.RowPolicy != PolicyDrop && l.RowPolicy != PolicyFail {
		return nil, nil, errors.Errorf("invalid row policy %q", l.RowPolicy)
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading dataset %s", path)
	}

	var records []sourceRow
	switch format {
	case FormatCSV:
		records, err = readCSV(content)
	case FormatXLSX:
		records, err = readXLSX(content, l.Sheet)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing dataset %s", path)
	}

	report := &domain.LoadReport{
		Source:      path,
		Format:      format,
		RowPolicy:   l.RowPolicy,
		Fingerprint: Fingerprint(content),
		LoadedAt:    l.now(),
		Rejected:    []domain.RowError{},
	}

	transactions, err := l.transform(ctx, records, report)
	if err != nil {
		return nil, report, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_source":   path,
		"dataset_format":   format,
		"dataset_accepted": report.RowsAccepted,
		"dataset_rejected": report.RowsRejected,
	}).Info("Dataset carregado")

	return transactions, report, nil
}

// sourceRow é uma linha do arquivo com o número da linha de origem
type sourceRow struct {
	Line   int
	Values []string
}

func (l *Loader) transform(ctx context.Context, records []sourceRow, report *domain.LoadReport) ([]*domain.Transaction, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrMissingColumn, "dataset has no header")
	}

	header := parseHeader(records[0].Values)
	for _, column := range requiredColumns {
		if _, ok := header[column]; !ok {
			return nil, errors.Wrap(ErrMissingColumn, column)
		}
	}

	transactions := make([]*domain.Transaction, 0, len(records)-1)

	for i, record := range records[1:] {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rowNum := record.Line
		if isBlank(record.Values) {
			continue
		}
		report.RowsRead++

		tx, err := parseRow(header, record.Values)
		if err != nil {
			report.Reject(rowNum, err.Error())
			if l.RowPolicy == PolicyFail {
				return nil, errors.Wrapf(ErrRowRejected, "row %d: %v", rowNum, err)
			}

			log.ForContext(ctx).WithFields(log.Fields{
				"dataset_row": rowNum,
				"error":       err.Error(),
			}).Debug("Linha rejeitada")
			continue
		}

		tx.ID = utils.GenerateID()
		tx.Row = rowNum
		transactions = append(transactions, tx)
	}

	report.RowsAccepted = len(transactions)
	if len(transactions) == 0 {
		return nil, ErrNoValidRows
	}

	return transactions, nil
}

// FormatOf identifica o formato pela extensão do arquivo
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", errors.Wrap(ErrUnsupportedFormat, filepath.Ext(path))
}

// Fingerprint é o hash blake2b-256 do conteúdo em hexadecimal
func Fingerprint(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func FingerprintFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading dataset %s", path)
	}
	return Fingerprint(content), nil
}

func readCSV(content []byte) ([]sourceRow, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var records []sourceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		records = append(records, sourceRow{Line: line, Values: record})
	}

	// remove o BOM que planilhas exportadas costumam incluir
	if len(records) > 0 && len(records[0].Values) > 0 {
		records[0].Values[0] = strings.TrimPrefix(records[0].Values[0], "\ufeff")
	}

	return records, nil
}

func readXLSX(content []byte, sheet string) ([]sourceRow, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer func(file *excelize.File) {
		if err := file.Close(); err != nil {
			log.L.Warnf("Erro ao fechar planilha: %v", err)
		}
	}(file)

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	// valores crus: datas e horas chegam como número serial do Excel,
	// independente do formato de exibição da célula
	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	records := make([]sourceRow, 0, len(rows))
	for i, row := range rows {
		records = append(records, sourceRow{Line: i + 1, Values: row})
	}

	if len(records) > 0 {
		header := parseHeader(records[0].Values)
		for _, record := range records[1:] {
			convertSerial(header, record.Values, columnDate, excelDate)
			convertSerial(header, record.Values, columnTime, excelClock)
		}
	}

	return records, nil
}

// convertSerial troca um número serial do Excel pelo texto equivalente.
// Valores que não são números ficam como estão.
func convertSerial(header map[string]int, record []string, column string, convert func(float64) (string, error)) {
	i, ok := header[column]
	if !ok || i >= len(record) {
		return
	}

	serial, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
	if err != nil {
		return
	}

	if value, err := convert(serial); err == nil {
		record[i] = value
	}
}

func excelDate(serial float64) (string, error) {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", err
	}
	return t.Format(time.DateOnly), nil
}

// excelClock usa apenas a fração do dia, com precisão de milissegundos
func excelClock(serial float64) (string, error) {
	if serial < 0 {
		return "", fmt.Errorf("negative time serial %v", serial)
	}

	_, fraction := math.Modf(serial)
	millis := int64(math.Round(fraction * 24 * 60 * 60 * 1000))
	clock := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(millis) * time.Millisecond)

	return clock.Format("15:04:05.000"), nil
}

func parseHeader(row []string) map[string]int {
	header := make(map[string]int, len(row))
	for i, name := range row {
		header[strings.TrimSpace(name)] = i
	}
	return header
}

func isBlank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

func field(header map[string]int, record []string, column string) string {
	i, ok := header[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRow(header map[string]int, record []string) (*domain.Transaction, error) {
	for _, column := range requiredColumns {
		if field(header, record, column) == "" {
			return nil, fmt.Errorf("missing %s", column)
		}
	}

	timestamp, err := parseTimestamp(field(header, record, columnDate), field(header, record, columnTime))
	if err != nil {
		return nil, err
	}

	payment, err := domain.ParsePaymentMethod(field(header, record, columnCashType))
	if err != nil {
		return nil, err
	}

	rawAmount := field(header, record, columnMoney)
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", columnMoney, rawAmount)
	}

	tx, err := domain.NewTransaction(timestamp, payment, amount, field(header, record, columnCoffeeName))
	if err != nil {
		return nil, err
	}

	if err := crossCheck(header, record, columnHour, tx.Hour); err != nil {
		return nil, err
	}
	if err := crossCheck(header, record, columnWeekday, tx.WeekdayOrder); err != nil {
		return nil, err
	}
	if err := crossCheck(header, record, columnMonth, tx.MonthOrder); err != nil {
		return nil, err
	}
	if err := checkTimeOfDay(header, record, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func parseTimestamp(rawDate, rawTime string) (time.Time, error) {
	date, err := parseWithLayouts(rawDate, dateLayouts)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %s", columnDate, rawDate)
	}

	clock, err := parseWithLayouts(rawTime, timeLayouts)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %s", columnTime, rawTime)
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), time.UTC), nil
}

func parseWithLayouts(value string, layouts []string) (time.Time, error) {
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// crossCheck compara uma coluna ordinal opcional com o valor derivado
// do timestamp. Coluna ausente ou vazia é ignorada.
func crossCheck(header map[string]int, record []string, column string, derived int) error {
	raw := field(header, record, column)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %s", column, raw)
	}

	if value != derived {
		return fmt.Errorf("%s %d contradicts timestamp (expected %d)", column, value, derived)
	}

	return nil
}

// checkTimeOfDay compara o rótulo Time_of_Day do arquivo com o período
// derivado da hora. Coluna ausente ou vazia é ignorada.
func checkTimeOfDay(header map[string]int, record []string, tx *domain.Transaction) error {
	raw := field(header, record, columnTimeOfDay)
	if raw == "" {
		return nil
	}

	label, err := domain.ParseTimeOfDay(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %s", columnTimeOfDay, raw)
	}

	if label != tx.TimeOfDay {
		return fmt.Errorf("%s %s contradicts hour %d (expected %s)", columnTimeOfDay, label, tx.Hour, tx.TimeOfDay)
	}

	return nil
}
