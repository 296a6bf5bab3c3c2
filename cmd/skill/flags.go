package main

import (
	"flag"
	"os"
	"strconv"
)

var flagRunAddr string
var flagLogLevel string
var flagPromptSpec string
var flagAITimeout int

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.StringVar(&flagPromptSpec, "p", "", "prompt spec YAML path")
	flag.IntVar(&flagAITimeout, "t", 10, "completion request timeout, seconds")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envPromptSpec := os.Getenv("PROMPT_SPEC"); envPromptSpec != "" {
		flagPromptSpec = envPromptSpec
	}

	if envAITimeout := os.Getenv("AI_TIMEOUT"); envAITimeout != "" {
		if t, err := strconv.Atoi(envAITimeout); err == nil {
			flagAITimeout = t
		}
	}
}
