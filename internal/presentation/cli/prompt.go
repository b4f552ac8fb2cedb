package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/bimakw/btc-balance/internal/application/services"
	"github.com/bimakw/btc-balance/internal/domain/entities"
)

// Prompt runs the interactive single-address balance lookup
type Prompt struct {
	service *services.BalanceService
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger
}

// NewPrompt creates a prompt reading from in and reporting to out
func NewPrompt(service *services.BalanceService, in io.Reader, out io.Writer, logger *zap.Logger) *Prompt {
	return &Prompt{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}
}

// Run reads one address, fetches and saves its balance and prints the outcome.
// Lookup failures are reported on out and are not returned; only a failure
// to read the input is.
func (p *Prompt) Run(ctx context.Context) error {
	fmt.Fprint(p.out, "Enter Bitcoin address: ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read address: %w", err)
	}

	address := strings.TrimSpace(line)
	if address == "" {
		WriteFailure(p.out, entities.ErrEmptyAddress)
		return nil
	}

	fmt.Fprintf(p.out, "Fetching balance for: %s\n", address)
	route := p.service.Classify(address)
	fmt.Fprintf(p.out, "Using %s API...\n", route.Network)

	result, err := p.service.FetchAndSave(ctx, address)
	if err != nil {
		p.logger.Debug("Balance lookup failed",
			zap.String("address", address),
			zap.String("kind", entities.KindOf(err).String()),
			zap.Error(err),
		)
		WriteFailure(p.out, err)
		return nil
	}

	WriteReport(p.out, result)
	return nil
}
