package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/meenmo/finlib/config"
	"github.com/meenmo/finlib/internal/cli"
	"github.com/meenmo/finlib/utils"
)

type mwrrOutput struct {
	TaskID      string  `json:"task_id"`
	Method      string  `json:"method,omitempty"`
	MWRRPercent float64 `json:"mwrr_percent"`
	Iterations  int     `json:"iterations"`
	Error       string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	configPath := flag.String("config", "", "solver config (.toml|.yaml)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: mwrr -input <path> [-config <path>]")
		fmt.Fprintln(os.Stderr, "Compute the money-weighted rate of return (IRR in percent) of each cash flow series.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: mwrr -input <path>")
			os.Exit(2)
		}
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			exitError(fmt.Sprintf("load config: %v", err))
		}
	}

	raw, err := cli.ReadInput(path, os.Stdin)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := cli.ParseBatch[cli.IRRInput](raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]mwrrOutput, 0, len(inputs))
	for _, in := range inputs {
		res, err := cli.SolveIRR(in, cfg)
		if err != nil {
			hadError = true
			outputs = append(outputs, mwrrOutput{TaskID: res.TaskID, Method: res.Method, Error: err.Error()})
			continue
		}
		outputs = append(outputs, mwrrOutput{
			TaskID:      res.TaskID,
			Method:      res.Method,
			MWRRPercent: utils.RoundTo(res.MWRRPercent, 6),
			Iterations:  res.Iterations,
		})
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func exitError(msg string) {
	b, _ := json.Marshal(mwrrOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
