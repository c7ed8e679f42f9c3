package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/epeers/portfoliocalc/internal/models"
	"github.com/epeers/portfoliocalc/internal/util"
	"github.com/gocarina/gocsv"
)

const (
	DefaultDataDir       = "DataToImport"
	InvestmentsFileName  = "Investments.csv"
	TransactionsFileName = "Transactions.csv"
	QuotesFileName       = "Quotes.csv"
	DefaultDelimiter     = ';'
	csvExtension         = ".csv"
)

var (
	ErrInvalidPath   = errors.New("invalid csv path")
	ErrMissingColumn = errors.New("missing required column")
)

// investmentRow, transactionRow and quoteRow mirror the file headers. Every field
// is read as text and converted afterwards so bad values report their row.
type investmentRow struct {
	InvestorID     string `csv:"InvestorId"`
	InvestmentID   string `csv:"InvestmentId"`
	InvestmentType string `csv:"InvestmentType"`
	City           string `csv:"City"`
	ISIN           string `csv:"ISIN"`
	FondsInvestor  string `csv:"FondsInvestor"`
}

type transactionRow struct {
	InvestmentID string `csv:"InvestmentId"`
	Type         string `csv:"Type"`
	Date         string `csv:"Date"`
	Value        string `csv:"Value"`
}

type quoteRow struct {
	ISIN          string `csv:"ISIN"`
	Date          string `csv:"Date"`
	PricePerShare string `csv:"PricePerShare"`
}

var (
	investmentColumns  = []string{"InvestorId", "InvestmentId", "InvestmentType", "City", "ISIN", "FondsInvestor"}
	transactionColumns = []string{"InvestmentId", "Type", "Date", "Value"}
	quoteColumns       = []string{"ISIN", "Date", "PricePerShare"}
)

// CSVSource reads the three record sets from delimited files
type CSVSource struct {
	investmentsPath  string
	transactionsPath string
	quotesPath       string
	delimiter        rune
}

// NewCSVSource validates the three paths and creates a CSVSource. Each path must
// be non-empty, end in .csv and name an existing file.
func NewCSVSource(investmentsPath, transactionsPath, quotesPath string, delimiter rune) (*CSVSource, error) {
	for _, p := range []struct{ name, path string }{
		{"investmentsPath", investmentsPath},
		{"transactionsPath", transactionsPath},
		{"quotesPath", quotesPath},
	} {
		if err := validatePath(p.path); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, p.name, err)
		}
	}
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSVSource{
		investmentsPath:  investmentsPath,
		transactionsPath: transactionsPath,
		quotesPath:       quotesPath,
		delimiter:        delimiter,
	}, nil
}

// NewCSVSourceFromDir creates a CSVSource for the default file names inside dir
func NewCSVSourceFromDir(dir string, delimiter rune) (*CSVSource, error) {
	return NewCSVSource(
		filepath.Join(dir, InvestmentsFileName),
		filepath.Join(dir, TransactionsFileName),
		filepath.Join(dir, QuotesFileName),
		delimiter,
	)
}

func validatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if filepath.Ext(path) != csvExtension {
		return fmt.Errorf("%q does not have a %s extension", path, csvExtension)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%q does not exist", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory", path)
	}
	return nil
}

// Investments reads and converts the investments file
func (s *CSVSource) Investments(ctx context.Context) ([]models.Investment, error) {
	rows := []investmentRow{}
	lines, err := s.decode(ctx, s.investmentsPath, investmentColumns, &rows)
	if err != nil {
		return nil, err
	}

	investments := make([]models.Investment, 0, len(rows))
	for i, row := range rows {
		rowNum := lines[i]
		investmentType, err := models.ParseInvestmentType(row.InvestmentType)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		var detail string
		switch investmentType {
		case models.InvestmentTypeStock:
			detail = row.ISIN
		case models.InvestmentTypeFund:
			detail = row.FondsInvestor
		case models.InvestmentTypeRealEstate:
			detail = row.City
		}

		inv, err := models.NewInvestment(investmentType, strings.TrimSpace(row.InvestorID), strings.TrimSpace(row.InvestmentID), strings.TrimSpace(detail))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		investments = append(investments, inv)
	}
	return investments, nil
}

// Transactions reads and converts the transactions file
func (s *CSVSource) Transactions(ctx context.Context) ([]models.Transaction, error) {
	rows := []transactionRow{}
	lines, err := s.decode(ctx, s.transactionsPath, transactionColumns, &rows)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		rowNum := lines[i]
		txType, err := models.ParseTransactionType(row.Type)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		date, err := util.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		value, err := parseNumber(row.Value)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid Value %q: %w", rowNum, row.Value, err)
		}

		transactions = append(transactions, models.Transaction{
			InvestmentID: strings.TrimSpace(row.InvestmentID),
			Type:         txType,
			Date:         date,
			Value:        value,
		})
	}
	return transactions, nil
}

// Quotes reads and converts the quotes file
func (s *CSVSource) Quotes(ctx context.Context) ([]models.Quote, error) {
	rows := []quoteRow{}
	lines, err := s.decode(ctx, s.quotesPath, quoteColumns, &rows)
	if err != nil {
		return nil, err
	}

	quotes := make([]models.Quote, 0, len(rows))
	for i, row := range rows {
		rowNum := lines[i]
		date, err := util.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		price, err := parseNumber(row.PricePerShare)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid PricePerShare %q: %w", rowNum, row.PricePerShare, err)
		}

		quotes = append(quotes, models.Quote{
			ID:            strings.TrimSpace(row.ISIN),
			Date:          date,
			PricePerShare: price,
		})
	}
	return quotes, nil
}

// decode unmarshals path into out and returns the file line of each data row
func (s *CSVSource) decode(ctx context.Context, path string, required []string, out any) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = s.delimiter
	reader.TrimLeadingSpace = true

	in := &contextReader{ctx: ctx, reader: reader, required: required}
	if err := gocsv.UnmarshalCSV(in, out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return in.lines, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// contextReader feeds gocsv one record at a time, stopping once ctx is done,
// and rejects a header that lacks any required column. lines holds the file
// line of every record after the header; blank lines are skipped by the reader.
type contextReader struct {
	ctx      context.Context
	reader   *csv.Reader
	required []string
	lines    []int
}

func (c *contextReader) Read() ([]string, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	return c.reader.Read()
}

func (c *contextReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := c.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if records == nil {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
			for i := range record {
				record[i] = strings.TrimSpace(record[i])
			}
			if err := checkHeader(record, c.required); err != nil {
				return nil, err
			}
		} else {
			line, _ := c.reader.FieldPos(0)
			c.lines = append(c.lines, line)
		}
		records = append(records, record)
	}
}

func checkHeader(header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range required {
		if !present[col] {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return nil
}
