package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"maps"
	"math"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	vmetrics "github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zeenix/mayheap/lib/codec"
	"github.com/zeenix/mayheap/lib/pool"
	"github.com/zeenix/mayheap/lib/text"
	"github.com/zeenix/mayheap/lib/vec"
)

var (
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Micro-benchmarks for the container library",
		Long: `Run micro-benchmarks against the library's containers and report
ns/op, ops/sec and latency percentiles per scenario.

A scenario is an operation at a container size. The default matrix is
--ops x --sizes; a YAML file given via --scenarios replaces it:

    scenarios:
      - op: vec-push
        size: 1024
      - op: codec-roundtrip
        size: 256`,
		RunE:    run,
		PreRunE: processBenchConfig,
	}
	benchSizes   []int
	benchOpNames []string
	benchRepeat  = 1
	benchWorkers = 10
	benchCodec   codec.ICodec
	benchRunID   string
)

// benchScenario is one benchmark: an operation at a container size.
type benchScenario struct {
	Op   string `yaml:"op"`
	Size int    `yaml:"size"`
}

// scenarioFile is the schema of a --scenarios YAML file.
type scenarioFile struct {
	Scenarios []benchScenario `yaml:"scenarios"`
}

// benchOutcome pairs a finished scenario with its measurements.
type benchOutcome struct {
	scenario benchScenario
	result   testing.BenchmarkResult
	timer    gometrics.Timer
}

// benchOps maps operation names to their runners. Every runner keeps its
// container inside the scenario size, so scenarios behave identically under
// both storage engines.
var benchOps = map[string]func(b *testing.B, size int, record func(time.Time)){
	"vec-push":        benchVecPush,
	"vec-extend":      benchVecExtend,
	"vec-pop":         benchVecPop,
	"vec-drain":       benchVecDrain,
	"text-pushstr":    benchTextPushStr,
	"codec-roundtrip": benchCodecRoundTrip,
	"pool-alloc":      benchPoolAlloc,
}

func knownOps() []string {
	return slices.Sorted(maps.Keys(benchOps))
}

func init() {
	// add flags
	key := "sizes"
	benchCmd.Flags().String(key, "16,256,4096", wrapString("Comma separated container sizes to benchmark"))
	key = "ops"
	benchCmd.Flags().String(key, strings.Join(knownOps(), ","), wrapString("Comma separated operations to run"))
	key = "count"
	benchCmd.Flags().Int(key, 1, wrapString("How many times to repeat each scenario"))
	key = "workers"
	benchCmd.Flags().Int(key, 10, wrapString("Number of parallel workers for the pool benchmark"))
	key = "csv"
	benchCmd.Flags().String(key, "", wrapString("Optional path to save benchmark results as CSV"))
	key = "metrics-addr"
	benchCmd.Flags().String(key, "", wrapString("Optional listen address to serve Prometheus metrics during the run (e.g. :9112)"))
	key = "scenarios"
	benchCmd.Flags().String(key, "", wrapString("Optional YAML file with a custom scenario matrix, replacing --sizes and --ops"))
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := bindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	var err error
	if benchCodec, err = getCodec(); err != nil {
		return err
	}
	if benchRepeat = viper.GetInt("count"); benchRepeat < 1 {
		return fmt.Errorf("count must be positive, got %d", benchRepeat)
	}
	if benchWorkers = viper.GetInt("workers"); benchWorkers < 1 {
		return fmt.Errorf("workers must be positive, got %d", benchWorkers)
	}

	benchSizes = benchSizes[:0]
	for _, field := range strings.Split(viper.GetString("sizes"), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return fmt.Errorf("invalid size %q", field)
		}
		benchSizes = append(benchSizes, n)
	}

	benchOpNames = benchOpNames[:0]
	for _, op := range strings.Split(viper.GetString("ops"), ",") {
		op = strings.TrimSpace(op)
		if _, ok := benchOps[op]; !ok {
			return fmt.Errorf("unknown op %q (known: %s)", op, strings.Join(knownOps(), ", "))
		}
		benchOpNames = append(benchOpNames, op)
	}
	return nil
}

func run(_ *cobra.Command, _ []string) error {
	scenarios, err := buildScenarios()
	if err != nil {
		return err
	}
	benchRunID = uuid.NewString()

	// Print configuration
	fmt.Println("mayheap container benchmarks")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("Backend:   %s\n", backendLabel)
	fmt.Printf("Codec:     %s\n", benchCodec.Name())
	fmt.Printf("Workers:   %d\n", benchWorkers)
	fmt.Printf("Scenarios: %d\n", len(scenarios)*benchRepeat)
	fmt.Printf("Run ID:    %s\n", benchRunID)
	fmt.Println()

	if addr := viper.GetString("metrics-addr"); addr != "" {
		go serveMetrics(addr)
	}

	fmt.Println("starting benchmarks...")
	outcomes := make([]benchOutcome, 0, len(scenarios)*benchRepeat)
	for _, sc := range scenarios {
		runner := benchOps[sc.Op]
		for rep := 0; rep < benchRepeat; rep++ {
			timer, record := newRecorder(sc)
			result := testing.Benchmark(func(b *testing.B) {
				runner(b, sc.Size, record)
			})
			printResult(sc, result, timer)
			outcomes = append(outcomes, benchOutcome{scenario: sc, result: result, timer: timer})
		}
	}

	if benchRepeat > 1 {
		printSummary(outcomes)
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, outcomes); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}
	return nil
}

// --------------------------------------------------------------------------
// Scenario runners
// --------------------------------------------------------------------------

func benchVecPush(b *testing.B, size int, record func(time.Time)) {
	v := vec.New[int64](size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := time.Now()
		if v.IsFull() {
			v.Clear()
		}
		_ = v.Push(int64(i))
		record(start)
	}
}

func benchVecExtend(b *testing.B, size int, record func(time.Time)) {
	batch := benchInts(batchSize(size))
	v := vec.New[int64](size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := time.Now()
		if v.Len()+len(batch) > size {
			v.Clear()
		}
		_ = v.Extend(batch...)
		record(start)
	}
}

func benchVecPop(b *testing.B, size int, record func(time.Time)) {
	data := benchInts(size)
	v, err := vec.FromSlice(size, data)
	if err != nil {
		b.Fatalf("seeding failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := time.Now()
		if _, ok := v.Pop(); !ok {
			_ = v.Extend(data...)
		}
		record(start)
	}
}

func benchVecDrain(b *testing.B, size int, record func(time.Time)) {
	data := benchInts(size)
	v := vec.New[int64](size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := time.Now()
		_ = v.Extend(data...)
		for range v.Drain() {
		}
		record(start)
	}
}

func benchTextPushStr(b *testing.B, size int, record func(time.Time)) {
	chunk := "0123456789abcdef"
	if size < len(chunk) {
		chunk = chunk[:size]
	}
	s := text.New(size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := time.Now()
		if s.Len()+len(chunk) > size {
			s.Clear()
		}
		_ = s.PushStr(chunk)
		record(start)
	}
}

func benchCodecRoundTrip(b *testing.B, size int, record func(time.Time)) {
	v, err := vec.FromSlice(size, benchInts(size))
	if err != nil {
		b.Fatalf("seeding failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := time.Now()
		data, err := codec.EncodeVec(benchCodec, v)
		if err != nil {
			b.Fatalf("encode failed: %v", err)
		}
		if _, err := codec.DecodeVec[int64](benchCodec, data, size); err != nil {
			b.Fatalf("decode failed: %v", err)
		}
		record(start)
	}
}

func benchPoolAlloc(b *testing.B, size int, record func(time.Time)) {
	p := pool.New[int64](size)
	exhausted := vmetrics.GetOrCreateCounter(
		fmt.Sprintf(`mayheap_bench_pool_exhausted_total{size="%d",backend=%q}`, size, backendLabel))

	b.SetParallelism(benchWorkers)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			start := time.Now()
			box, err := p.Alloc(42)
			if err != nil {
				// drained bounded pool; counted, not fatal
				exhausted.Inc()
				record(start)
				continue
			}
			box.Free()
			record(start)
		}
	})
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// buildScenarios assembles the scenario list from the flag matrix or the
// --scenarios file.
func buildScenarios() ([]benchScenario, error) {
	if path := viper.GetString("scenarios"); path != "" {
		return loadScenarioFile(path)
	}
	scenarios := make([]benchScenario, 0, len(benchOpNames)*len(benchSizes))
	for _, op := range benchOpNames {
		for _, size := range benchSizes {
			scenarios = append(scenarios, benchScenario{Op: op, Size: size})
		}
	}
	return scenarios, nil
}

func loadScenarioFile(path string) ([]benchScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}
	for _, sc := range f.Scenarios {
		if _, ok := benchOps[sc.Op]; !ok {
			return nil, fmt.Errorf("scenario file %s: unknown op %q (known: %s)",
				path, sc.Op, strings.Join(knownOps(), ", "))
		}
		if sc.Size < 1 {
			return nil, fmt.Errorf("scenario file %s: op %q has invalid size %d", path, sc.Op, sc.Size)
		}
	}
	return f.Scenarios, nil
}

// newRecorder builds the per-scenario measurement hook: an in-process timer
// for percentiles plus the Prometheus series for live exposition.
func newRecorder(sc benchScenario) (gometrics.Timer, func(time.Time)) {
	labels := fmt.Sprintf(`op=%q,size="%d",backend=%q,codec=%q`,
		sc.Op, sc.Size, backendLabel, benchCodec.Name())
	hist := vmetrics.GetOrCreateHistogram("mayheap_bench_op_duration_seconds{" + labels + "}")
	ops := vmetrics.GetOrCreateCounter("mayheap_bench_ops_total{" + labels + "}")
	timer := gometrics.NewTimer()

	record := func(start time.Time) {
		d := time.Since(start)
		timer.Update(d)
		hist.Update(d.Seconds())
		ops.Inc()
	}
	return timer, record
}

// serveMetrics exposes the benchmark series in Prometheus text format until
// the process exits.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		vmetrics.WritePrometheus(w, true)
	})
	log.Printf("serving Prometheus metrics on http://%s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("metrics server: %v", err)
	}
}

func benchInts(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i * 31)
	}
	return out
}

func batchSize(size int) int {
	if size < 16 {
		return size
	}
	return 16
}

// printResult prints the result of one scenario run in a formatted way
func printResult(sc benchScenario, result testing.BenchmarkResult, timer gometrics.Timer) {
	name := fmt.Sprintf("%s/%d", sc.Op, sc.Size)
	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	fmt.Printf("%-24s%10.0f ns/op %14.0f ops/sec    p50 %-12v p95 %-12v p99 %-12v\n",
		name, nsPerOp, opsPerSec,
		time.Duration(timer.Percentile(0.5)),
		time.Duration(timer.Percentile(0.95)),
		time.Duration(timer.Percentile(0.99)))
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, outcomes []benchOutcome) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"RunID", "Timestamp", "Backend", "Codec", "Op", "Size",
		"Iterations", "NsPerOp", "OpsPerSec", "P50Ns", "P95Ns", "P99Ns", "Workers",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write scenario results
	now := time.Now().Format(time.RFC3339)
	for _, o := range outcomes {
		nsPerOp := math.Max(float64(o.result.NsPerOp()), 1)
		row := []string{
			benchRunID,
			now,
			backendLabel,
			benchCodec.Name(),
			o.scenario.Op,
			strconv.Itoa(o.scenario.Size),
			strconv.Itoa(o.result.N),
			fmt.Sprintf("%.0f", nsPerOp),
			fmt.Sprintf("%.0f", 1.0/(nsPerOp/1e9)),
			fmt.Sprintf("%.0f", o.timer.Percentile(0.5)),
			fmt.Sprintf("%.0f", o.timer.Percentile(0.95)),
			fmt.Sprintf("%.0f", o.timer.Percentile(0.99)),
			strconv.Itoa(benchWorkers),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %v", o.scenario.Op, err)
		}
	}
	return nil
}
