package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// credentials is the register and login body
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createTransaction is the body of POST /api/transactions/
type createTransaction struct {
	Amount   int64          `json:"amount"`
	Gateway  string         `json:"gateway"`
	Metadata map[string]any `json:"txn_metadata"`
}

// envelope is the response wrapper used by every endpoint
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

type loginData struct {
	AccessToken string `json:"access_token"`
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
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	CustomerStats      map[int]int    // Requests per customer
	ScenarioStats      map[string]int // Requests per scenario
	Lock               sync.Mutex
}

// Scenario defines one kind of request a worker can make
type Scenario struct {
	Name    string
	Gateway string
	Amount  int64 // kobo; zero means list instead of create
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	customers := flag.Int("u", 3, "Number of customers to register and distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	gatewaysFlag := flag.String("gateways", "paystack,moniepoint", "Comma-separated gateways to create transactions on")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	tokens, err := setupCustomers(client, *baseURL, *customers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "customer setup failed: %v\n", err)
		os.Exit(1)
	}

	scenarios := buildScenarios(strings.Split(*gatewaysFlag, ","))

	fmt.Printf("Load testing API across %d customers\n", len(tokens))
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		CustomerStats:   make(map[int]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, tokens, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
			stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// buildScenarios mixes transaction creation on every gateway with listing
func buildScenarios(gateways []string) []Scenario {
	scenarios := []Scenario{{Name: "List"}}
	for _, gw := range gateways {
		gw = strings.TrimSpace(gw)
		if gw == "" {
			continue
		}
		scenarios = append(scenarios,
			Scenario{Name: "Create small " + gw, Gateway: gw, Amount: 10_000},
			Scenario{Name: "Create medium " + gw, Gateway: gw, Amount: 250_000},
			Scenario{Name: "Create large " + gw, Gateway: gw, Amount: 5_000_000},
		)
	}
	return scenarios
}

// setupCustomers registers throwaway customers and returns a bearer token for each
func setupCustomers(client *http.Client, baseURL string, count int) ([]string, error) {
	if count <= 0 {
		count = 1
	}

	run := time.Now().UnixNano()
	tokens := make([]string, 0, count)
	for i := 0; i < count; i++ {
		creds := credentials{
			Email:    fmt.Sprintf("loadtest+%d-%d@example.com", run, i),
			Password: "load-test-password",
		}

		if _, err := postJSON(client, baseURL+"/api/auth/register", "", creds); err != nil {
			return nil, fmt.Errorf("register %s: %w", creds.Email, err)
		}

		env, err := postJSON(client, baseURL+"/api/auth/login", "", creds)
		if err != nil {
			return nil, fmt.Errorf("login %s: %w", creds.Email, err)
		}

		var data loginData
		if err := json.Unmarshal(env.Data, &data); err != nil || data.AccessToken == "" {
			return nil, fmt.Errorf("login %s: no access token in response", creds.Email)
		}
		tokens = append(tokens, data.AccessToken)
	}
	return tokens, nil
}

func postJSON(client *http.Client, url, token string, body any) (*envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("HTTP status code %d: %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &env, fmt.Errorf("HTTP status code %d: %s", resp.StatusCode, env.Message)
	}
	return &env, nil
}

func worker(client *http.Client, baseURL string, delayMs int, tokens []string,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		customer := rand.Intn(len(tokens))
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.CustomerStats[customer]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		var (
			req *http.Request
			err error
		)
		if scenario.Amount == 0 {
			req, err = http.NewRequest(http.MethodGet, baseURL+"/api/transactions/", nil)
		} else {
			var payload []byte
			payload, err = json.Marshal(createTransaction{
				Amount:   scenario.Amount,
				Gateway:  scenario.Gateway,
				Metadata: map[string]any{"load_test_job": jobID},
			})
			if err == nil {
				req, err = http.NewRequest(http.MethodPost, baseURL+"/api/transactions/", bytes.NewReader(payload))
			}
		}
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tokens[customer])

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{
			Scenario:     scenario.Name,
			ResponseTime: time.Since(startTime),
		}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sortedTimes := slices.Clone(stats.ResponseTimes)
	slices.Sort(sortedTimes)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sortedTimes, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sortedTimes, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sortedTimes, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sortedTimes, 99))

	fmt.Println("\n----------------- CUSTOMER DISTRIBUTION -----------------")
	for customer, count := range stats.CustomerStats {
		fmt.Printf("Customer %d:    %d requests (%.1f%%)\n", customer, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-28s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
