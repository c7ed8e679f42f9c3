package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/epeers/portfoliocalc/internal/services"
	"github.com/epeers/portfoliocalc/internal/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	consolePrompt     = "Please enter date and investor id (date;investorId), empty line to quit"
	msgWrongInput     = "Wrong input"
	msgDateParse      = "Date couldn't be parsed"
	msgEmptyInvestor  = "Investor id is empty"
	consoleFieldCount = 2
)

// ConsoleHandler answers valuation queries typed as "date;investorId" lines
type ConsoleHandler struct {
	valuationSvc *services.ValuationService
	printer      *message.Printer
}

// NewConsoleHandler creates a new ConsoleHandler. Values are printed with the
// digit grouping of tag.
func NewConsoleHandler(valuationSvc *services.ValuationService, tag language.Tag) *ConsoleHandler {
	return &ConsoleHandler{
		valuationSvc: valuationSvc,
		printer:      message.NewPrinter(tag),
	}
}

// Run reads queries from in until an empty line, EOF or ctx is done, writing one
// answer per query to out.
func (h *ConsoleHandler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, consolePrompt)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		fmt.Fprintln(out, h.Answer(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Answer evaluates a single "date;investorId" query
func (h *ConsoleHandler) Answer(line string) string {
	fields := strings.Split(line, ";")
	if len(fields) != consoleFieldCount {
		return msgWrongInput
	}

	on, err := util.ParseDate(fields[0])
	if err != nil {
		log.WithField("input", fields[0]).Debug("unparseable console date")
		return msgDateParse
	}

	investorID := strings.TrimSpace(fields[1])
	if investorID == "" {
		return msgEmptyInvestor
	}

	value := h.valuationSvc.PortfolioValue(investorID, on)
	return h.printer.Sprintf("%s portfolio values is %.2f", investorID, value)
}
