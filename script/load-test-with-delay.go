package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// DeployRequest represents the vault deployment payload
type DeployRequest struct {
	UnlockTime    int64  `json:"unlockTime"`
	InitialAmount string `json:"initialAmount"`
}

// DeployResponse represents the vault deployment response
type DeployResponse struct {
	VaultID    string `json:"vaultId"`
	Owner      string `json:"owner"`
	UnlockTime int64  `json:"unlockTime"`
	Balance    string `json:"balance"`
}

// WithdrawResponse represents the withdrawal API response
type WithdrawResponse struct {
	WithdrawalID  string `json:"withdrawalId"`
	VaultID       string `json:"vaultId"`
	Success       bool   `json:"success"`
	Amount        string `json:"amount,omitempty"`
	ResultBalance string `json:"resultBalance,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

// TestVault is a vault deployed for the test run
type TestVault struct {
	ID    string
	Owner string
}

// TestResult contains metrics for a single request
type TestResult struct {
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
	VaultStats         map[string]int // Track requests per vault
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// WithdrawScenario defines which caller identity a request uses
type WithdrawScenario struct {
	Name  string // For stats tracking
	Owner bool   // Whether the caller is the vault owner
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	vaultCount := flag.Int("v", 3, "Number of vaults to deploy and distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	unlockAfter := flag.Int("unlock", 5, "Seconds until the deployed vaults unlock")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	// Deploy the vaults the test will hammer
	fmt.Printf("Deploying %d vaults (unlocking in %d s)...\n", *vaultCount, *unlockAfter)
	vaults, err := deployVaults(*baseURL, *vaultCount, *unlockAfter)
	if err != nil {
		fmt.Printf("Failed to deploy vaults: %v\n", err)
		return
	}

	// Withdrawal scenarios: the owner calling, and a stranger being rejected
	scenarios := []WithdrawScenario{
		{"Owner Withdraw", true},
		{"Stranger Withdraw", false},
	}

	fmt.Printf("Load testing API across %d vaults\n", len(vaults))
	fmt.Printf("Withdrawal scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		VaultStats:      make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	// Initialize stats for each vault
	for _, v := range vaults {
		stats.VaultStats[v.ID] = 0
	}

	// Initialize stats for each scenario
	for _, scenario := range scenarios {
		stats.ScenarioStats[scenario.Name] = 0
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, vaults, scenarios, jobs, results, stats)
		}(i)
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Start a goroutine to collect results
	go func() {
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

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
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

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats)
}

// deployVaults creates the vaults the withdrawal load will target
func deployVaults(baseURL string, count int, unlockAfter int) ([]TestVault, error) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	vaults := make([]TestVault, 0, count)
	unlockTime := time.Now().Add(time.Duration(unlockAfter) * time.Second).Unix()

	for i := 0; i < count; i++ {
		owner := fmt.Sprintf("load-owner-%d", i)

		payload := DeployRequest{
			UnlockTime:    unlockTime,
			InitialAmount: fmt.Sprintf("%d.00", 100+rand.Intn(900)),
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequest("POST", baseURL+"/vault", bytes.NewBuffer(jsonData))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", owner)

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusCreated {
			resp.Body.Close()
			return nil, fmt.Errorf("deploy returned HTTP status code %d", resp.StatusCode)
		}

		var deployed DeployResponse
		if err := json.NewDecoder(resp.Body).Decode(&deployed); err != nil {
			resp.Body.Close()
			return nil, err
		}
		resp.Body.Close()

		vaults = append(vaults, TestVault{ID: deployed.VaultID, Owner: deployed.Owner})
	}

	return vaults, nil
}

func worker(id int, baseURL string, delayMs int, vaults []TestVault,
	scenarios []WithdrawScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for jobID := range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select a vault
		vault := vaults[rand.Intn(len(vaults))]

		// Randomly select a withdrawal scenario
		scenario := scenarios[rand.Intn(len(scenarios))]

		// Update stats for which vault and scenario was selected
		stats.Lock.Lock()
		stats.VaultStats[vault.ID]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		// Create API URL for this vault
		apiURL := fmt.Sprintf("%s/vault/%s/withdraw", baseURL, vault.ID)

		// Pick the caller identity for the scenario
		caller := vault.Owner
		if !scenario.Owner {
			caller = fmt.Sprintf("stranger-%d-%d", id, jobID)
		}

		// Create request
		req, err := http.NewRequest("POST", apiURL, nil)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Set headers
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", caller)

		// Send the request and measure response time
		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			result.Success = (statusCode >= 200 && statusCode < 300)
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	// Calculate theoretical TPS (ignores actual delays between requests)
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	// Calculate TPS if all requests were successful
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate success rate adjusted TPS
	adjustedTps := theoreticalTps * (float64(stats.SuccessfulRequests) / float64(stats.TotalRequests))

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		// Sort the response times
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	// Print results
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
	fmt.Printf("Success-adjusted TPS: %.2f (theoretical * success rate)\n", adjustedTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	// Print vault distribution
	fmt.Println("\n----------------- VAULT DISTRIBUTION -----------------")
	totalVaults := 0
	for _, count := range stats.VaultStats {
		totalVaults += count
	}
	for vaultID, count := range stats.VaultStats {
		if count > 0 {
			fmt.Printf("Vault %s:    %d requests (%.1f%%)\n", vaultID, count,
				float64(count)/float64(totalVaults)*100)
		}
	}

	// Print scenario distribution
	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-18s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	// Print error distribution if there were errors
	// Requests rejected with 423 (locked) or 403 (not owner) land here too;
	// a healthy run shows them, not transport errors
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}

	// Final conclusion
	fmt.Println("\n================= CONCLUSION =================")
	if theoreticalTps >= 30 {
		fmt.Printf("✅ SYSTEM CAN THEORETICALLY EXCEED the required 30 TPS threshold (%.2f TPS)\n", theoreticalTps)

		if rawTps < 30 {
			fmt.Println("⚠️ But rejections or other issues are lowering the successful rate")
		}
	} else {
		fmt.Printf("❌ SYSTEM DOES NOT MEET the required 30 TPS threshold (%.2f TPS)\n", theoreticalTps)
	}
	fmt.Println("================================================")
}
