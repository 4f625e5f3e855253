package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"
)

// balanceResponse is the body of a successful deposit or withdrawal
type balanceResponse struct {
	AccountNo string `json:"accountNo"`
	Balance   int64  `json:"balance"`
	Message   string `json:"message"`
}

// testAccount is an account opened for the run. Applied tracks the net effect
// of every operation the server accepted.
type testAccount struct {
	AccountNo string
	PIN       string
	mu        sync.Mutex
	Applied   int64
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	RejectedRequests   int // 4xx, e.g. a withdrawal larger than the balance
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// operationScenario defines one kind of request sent during the run
type operationScenario struct {
	Name   string
	Path   string
	Amount int64
	Sign   int64
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 500, "Total number of operations to send")
	accountCount := flag.Int("a", 3, "Number of accounts to open and spread the load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	scenarios := []operationScenario{
		{"Deposit Small", "/accounts/deposit", 10, 1},
		{"Deposit Large", "/accounts/deposit", 500, 1},
		{"Withdraw Small", "/accounts/withdraw", 15, -1},
		{"Withdraw Large", "/accounts/withdraw", 400, -1},
	}

	accounts, err := openAccounts(client, *baseURL, *accountCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open accounts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing %d accounts with %d operations\n", len(accounts), *totalRequests)
	fmt.Printf("Concurrency: %d goroutines, delay %d ms\n", *concurrency, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, accounts, scenarios, jobs, stats)
		}()
	}
	wg.Wait()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	if !verifyBalances(client, *baseURL, accounts) {
		os.Exit(1)
	}
}

func openAccounts(client *http.Client, baseURL string, count int) ([]*testAccount, error) {
	accounts := make([]*testAccount, 0, count)
	for i := 0; i < count; i++ {
		pin := fmt.Sprintf("%04d", rand.IntN(10000))
		var created struct {
			AccountNo string `json:"accountNo"`
		}
		status, err := postJSON(client, baseURL+"/accounts", map[string]any{
			"name":  fmt.Sprintf("Load Test %d", i+1),
			"email": fmt.Sprintf("load%d@example.com", i+1),
			"age":   30,
			"pin":   pin,
		}, &created)
		if err != nil {
			return nil, err
		}
		if status != http.StatusCreated {
			return nil, fmt.Errorf("create account: HTTP status code %d", status)
		}
		accounts = append(accounts, &testAccount{AccountNo: created.AccountNo, PIN: pin})
	}
	return accounts, nil
}

func worker(client *http.Client, baseURL string, delayMs int, accounts []*testAccount,
	scenarios []operationScenario, jobs <-chan int, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		account := accounts[rand.IntN(len(accounts))]
		scenario := scenarios[rand.IntN(len(scenarios))]

		var body balanceResponse
		start := time.Now()
		status, err := postJSON(client, baseURL+scenario.Path, map[string]any{
			"accountNo": account.AccountNo,
			"pin":       account.PIN,
			"amount":    scenario.Amount,
		}, &body)

		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(start), StatusCode: status, Error: err}
		if err == nil && status == http.StatusOK {
			result.Success = true
			account.mu.Lock()
			account.Applied += scenario.Sign * scenario.Amount
			account.mu.Unlock()
		} else if err == nil && status >= 500 {
			result.Error = fmt.Errorf("HTTP status code %d", status)
		}

		record(stats, result)
	}
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ScenarioStats[result.Scenario]++
	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)

	switch {
	case result.Success:
		stats.SuccessfulRequests++
	case result.Error == nil:
		stats.RejectedRequests++
	default:
		stats.FailedRequests++
		stats.ErrorCounts[result.Error.Error()]++
	}
}

// verifyBalances checks that every account's balance equals the sum of the
// operations the server acknowledged
func verifyBalances(client *http.Client, baseURL string, accounts []*testAccount) bool {
	fmt.Println("\n----------------- BALANCE CHECK -----------------")
	ok := true
	for _, account := range accounts {
		var details struct {
			Balance int64 `json:"balance"`
		}
		status, err := postJSON(client, baseURL+"/accounts/details", map[string]any{
			"accountNo": account.AccountNo,
			"pin":       account.PIN,
		}, &details)
		if err != nil || status != http.StatusOK {
			fmt.Printf("%s: could not read details (status %d, err %v)\n", account.AccountNo, status, err)
			ok = false
			continue
		}

		if details.Balance != account.Applied || details.Balance < 0 {
			fmt.Printf("❌ %s: balance %d, expected %d\n", account.AccountNo, details.Balance, account.Applied)
			ok = false
		} else {
			fmt.Printf("✅ %s: balance %d\n", account.AccountNo, details.Balance)
		}
	}
	return ok
}

func postJSON(client *http.Client, url string, payload any, out any) (int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests+stats.RejectedRequests) / stats.TotalTime.Seconds()

	var p50, p90, p99, maxTime time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
		maxTime = sorted[n-1]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Accepted:            %d\n", stats.SuccessfulRequests)
	fmt.Printf("Rejected (4xx):      %d\n", stats.RejectedRequests)
	fmt.Printf("Failed:              %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Answered TPS:        %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)
	fmt.Printf("Maximum Response:    %v\n", maxTime)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
