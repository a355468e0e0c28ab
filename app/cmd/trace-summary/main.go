// Command trace-summary tallies a day's gateway trace log by event and
// status, for a quick look at what the assistant handled.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tidwall/gjson"
)

func main() {
	traceDir := flag.String("dir", filepath.Join("data", "traces"), "trace base directory")
	day := flag.String("day", time.Now().UTC().Format("2006-01-02"), "day to summarize (YYYY-MM-DD)")
	flag.Parse()

	path := filepath.Join(*traceDir, *day, "chat_events.jsonl")
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace summary failed: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	counts := map[string]int{}
	errors := map[string]int{}
	total := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if !gjson.ValidBytes(line) {
			continue
		}
		parsed := gjson.ParseBytes(line)
		event := parsed.Get("event").String()
		if event == "" {
			continue
		}
		total++
		counts[event]++
		if parsed.Get("status").String() == "error" {
			errors[event]++
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "trace summary failed: read: %v\n", err)
		os.Exit(2)
	}

	events := make([]string, 0, len(counts))
	for event := range counts {
		events = append(events, event)
	}
	sort.Strings(events)

	fmt.Printf("%s: %d events\n", *day, total)
	for _, event := range events {
		fmt.Printf("  %-22s %6d", event, counts[event])
		if errors[event] > 0 {
			fmt.Printf("  (%d errors)", errors[event])
		}
		fmt.Println()
	}
}
