package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MMansij/New-Int/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	audioFlag := flag.String("audio", "summary.mp3", "where to save the spoken summary")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] <document>")
		os.Exit(2)
	}

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	path := flag.Arg(0)

	f, err := os.Open(path)

	if err != nil {
		panic(err)
	}

	defer f.Close()

	result, err := c.Submissions.New(ctx, client.SubmissionRequest{
		Name:   filepath.Base(path),
		Reader: f,
	})

	if err != nil {
		panic(err)
	}

	fmt.Println("Type:   ", result.DocumentType)
	fmt.Println("Summary:", result.SpokenSummary)
	fmt.Println()

	keys := make([]string, 0, len(result.KeyValueData))

	for k := range result.KeyValueData {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("  %s: %s\n", k, result.KeyValueData[k])
	}

	if *audioFlag == "" {
		return
	}

	if err := os.WriteFile(*audioFlag, result.Audio, 0o644); err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Println("Audio:  ", *audioFlag)
}
