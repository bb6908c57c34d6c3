package main

import (
	"flag"
	"os"
	"runtime"

	"git.gammaspectra.live/P2Pool/zk/aes32"
	"git.gammaspectra.live/P2Pool/zk/aes32/lanes"
	"git.gammaspectra.live/P2Pool/zk/utils"
)

type Report struct {
	Lanes  string    `json:"lanes"`
	Passed int       `json:"passed"`
	Failed int       `json:"failed"`
	Tests  []Outcome `json:"tests"`
}

func main() {
	lanesName := flag.String("lanes", lanes.NameConstantTime, "Lane primitive implementation: "+lanes.NameConstantTime+" or "+lanes.NameTable)
	run := flag.String("run", "", "Comma separated test names to run. Runs every test when empty")
	vectorsPath := flag.String("vectors", "", "YAML file with additional known-answer vectors")
	decimal := flag.Bool("decimal", false, "Print blocks and round keys as big-endian decimal integers instead of hex")
	showKeys := flag.Bool("keys", false, "Print the expanded round keys of the built-in tests")
	samples := flag.Uint64("samples", 1024, "Random plaintexts for test_avalanche")
	jsonPath := flag.String("json", "", "Write an indented JSON report to this path, - for a single line on the log output")
	logLevel := flag.String("log-level", "info", "Log level: error, info, notice or debug")
	cacheSize := flag.Int("cache", 16, "Expanded cipher cache size for file vectors")
	flag.Parse()

	level, err := utils.ParseLogLevel(*logLevel)
	if err != nil {
		utils.Fatalf("%s", err)
	}
	utils.GlobalLogLevel = level

	l, err := lanes.Lookup(*lanesName)
	if err != nil {
		utils.Fatalf("%s", err)
	}
	// verifies the primitives once, before anything is scheduled or encrypted
	engine, err := aes32.New(l)
	if err != nil {
		utils.Fatalf("%s", err)
	}
	utils.Noticef("AES32", "lanes %s, %s/%s", l.Name(), runtime.GOOS, runtime.GOARCH)

	h := &harness{
		engine:   engine,
		cache:    aes32.NewCipherCache(engine, *cacheSize),
		decimal:  *decimal,
		showKeys: *showKeys,
		samples:  *samples,
	}

	reg := newRegistry()
	if err = registerBuiltin(reg); err != nil {
		utils.Fatalf("%s", err)
	}
	if *vectorsPath != "" {
		vectors, err := LoadVectors(*vectorsPath)
		if err != nil {
			utils.Fatalf("could not load vectors: %s", err)
		}
		if err = registerVectors(reg, vectors); err != nil {
			utils.Fatalf("%s", err)
		}
		utils.Noticef("AES32", "loaded %d vectors from %s", len(vectors), *vectorsPath)
	}

	names, err := reg.selected(*run)
	if err != nil {
		utils.Fatalf("%s", err)
	}

	report := Report{
		Lanes: l.Name(),
		Tests: h.run(reg, names),
	}
	for _, o := range report.Tests {
		if o.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	logCacheStats(h.cache)
	utils.Logf("AES32", "%d passed, %d failed", report.Passed, report.Failed)

	if *jsonPath != "" {
		if err = writeReport(*jsonPath, report); err != nil {
			utils.Fatalf("could not write report: %s", err)
		}
	}

	if report.Failed > 0 {
		os.Exit(1)
	}
}

func logCacheStats(c *aes32.CipherCache) {
	if !utils.IsLogLevelDebug() {
		return
	}
	hits, misses := c.Stats()
	utils.Debugf("AES32", "cipher cache: %d entries, %d hits, %d misses", c.Len(), hits, misses)
}

// writeReport writes one compact line to the log output for "-", indented JSON to a file otherwise.
func writeReport(path string, report Report) error {
	if path == "-" {
		buf, err := utils.MarshalJSON(report)
		if err != nil {
			return err
		}
		_, err = utils.LogOutput.Write(append(buf, '\n'))
		return err
	}

	buf, err := utils.MarshalJSONIndent(report, "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0o644)
}
