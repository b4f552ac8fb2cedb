package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bimakw/btc-balance/internal/application/services"
	"github.com/bimakw/btc-balance/internal/config"
	"github.com/bimakw/btc-balance/internal/domain/entities"
	"github.com/bimakw/btc-balance/internal/infrastructure/mempool"
	"github.com/bimakw/btc-balance/internal/infrastructure/storage"
	"github.com/bimakw/btc-balance/internal/testutil"
)

// setupPrompt wires a prompt against a fake explorer and a temp output dir
func setupPrompt(t *testing.T, explorerURL, input string) (*Prompt, *bytes.Buffer, string) {
	t.Helper()

	logger := zap.NewNop()
	dir := t.TempDir()

	client := mempool.NewClient(config.ExplorerConfig{
		MainnetURL:     explorerURL + "/api",
		TestnetURL:     explorerURL + "/testnet/api",
		RequestTimeout: 2 * time.Second,
	}, logger)
	store := storage.NewFileStore(config.OutputConfig{Dir: dir}, logger)
	service := services.NewBalanceService(client, store, logger)

	out := &bytes.Buffer{}
	return NewPrompt(service, strings.NewReader(input), out, logger), out, dir
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	return len(entries)
}

func TestPrompt_Run_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testutil.ExampleAddressResponse))
	}))
	defer server.Close()

	prompt, out, dir := setupPrompt(t, server.URL, "1ExampleAddr\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/address/1ExampleAddr" {
		t.Errorf("expected mainnet API path, got %s", gotPath)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bitcoin_balance_1ExampleAddr.json"))
	if err != nil {
		t.Fatalf("expected result file: %v", err)
	}

	var saved entities.BalanceRecord
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("result file is not valid JSON: %v", err)
	}
	expected := entities.BalanceRecord{
		Address:          "1ExampleAddr",
		Network:          entities.NetworkMainnet,
		BalanceSatoshis:  300000,
		BalanceBTC:       0.003,
		TotalReceived:    500000,
		TotalSent:        200000,
		TransactionCount: 3,
	}
	if saved != expected {
		t.Errorf("unexpected record %+v", saved)
	}

	output := out.String()
	for _, line := range []string{
		"Enter Bitcoin address: ",
		"Fetching balance for: 1ExampleAddr\n",
		"Using mainnet API...\n",
		"Balance information saved to: " + filepath.Join(dir, "bitcoin_balance_1ExampleAddr.json") + "\n",
		"Network: mainnet\n",
		"Balance: 0.00300000 BTC\n",
		"Satoshis: 300,000\n",
		"Total Received: 500,000 satoshis\n",
		"Total Sent: 200,000 satoshis\n",
		"Transactions: 3\n",
	} {
		if !strings.Contains(output, line) {
			t.Errorf("expected output to contain %q, got:\n%s", line, output)
		}
	}
}

func TestPrompt_Run_TestnetAddress(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"chain_stats": {"funded_txo_sum": 0, "spent_txo_sum": 0, "tx_count": 0}}`))
	}))
	defer server.Close()

	prompt, out, _ := setupPrompt(t, server.URL, "  tb1qexample  \n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/testnet/api/address/tb1qexample" {
		t.Errorf("expected testnet API path, got %s", gotPath)
	}
	if !strings.Contains(out.String(), "Using testnet API...") {
		t.Errorf("expected testnet notice, got:\n%s", out.String())
	}
}

func TestPrompt_Run_EmptyAddress(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	for _, input := range []string{"\n", "   \n", ""} {
		prompt, out, dir := setupPrompt(t, server.URL, input)

		if err := prompt.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), "Error: No address provided!") {
			t.Errorf("expected empty address message for %q, got:\n%s", input, out.String())
		}
		if n := countFiles(t, dir); n != 0 {
			t.Errorf("expected no files for %q, got %d", input, n)
		}
	}

	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no network calls, got %d", calls)
	}
}

func TestPrompt_Run_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	prompt, out, dir := setupPrompt(t, url, "1ExampleAddr\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("expected normal completion, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Error: Failed to fetch data - ") {
		t.Errorf("expected network error message, got:\n%s", output)
	}
	if !strings.Contains(output, "Failed to get balance information") {
		t.Errorf("expected failure summary, got:\n%s", output)
	}
	if n := countFiles(t, dir); n != 0 {
		t.Errorf("expected no files, got %d", n)
	}
}

func TestPrompt_Run_ResponseFormatFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chain_stats": {"funded_txo_sum": 1, "spent_txo_sum": 0}}`))
	}))
	defer server.Close()

	prompt, out, dir := setupPrompt(t, server.URL, "1ExampleAddr\n")

	if err := prompt.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Error: Unexpected API response format - chain_stats.tx_count") {
		t.Errorf("expected response format message, got:\n%s", out.String())
	}
	if n := countFiles(t, dir); n != 0 {
		t.Errorf("expected no files, got %d", n)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }

func TestPrompt_Run_ReadFailure(t *testing.T) {
	explorer := testutil.NewMockExplorerRepository()
	service := services.NewBalanceService(explorer, testutil.NewMockRecordRepository(), zap.NewNop())
	prompt := NewPrompt(service, failingReader{}, &bytes.Buffer{}, zap.NewNop())

	if err := prompt.Run(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if explorer.CallCount() != 0 {
		t.Errorf("expected no explorer calls, got %d", explorer.CallCount())
	}
}
