package config

import "flag"

// CLIArgs holds the parsed command line arguments.
type CLIArgs struct {
	File       string
	ConfigFile string
	Port       string
	Model      string
	Lines      int
	Debug      bool
}

// ParseArgs parses the command line. Flags mirror the tool's single pipeline:
// a file to analyze, a prompt config, and overrides for the inference server.
func ParseArgs() *CLIArgs {
	args := &CLIArgs{}
	flag.StringVar(&args.File, "f", "", "Path to the log or text file to analyze")
	flag.StringVar(&args.ConfigFile, "c", "", "Path to the YAML config file")
	flag.StringVar(&args.Port, "p", "", "Inference server port (default 11434)")
	flag.StringVar(&args.Model, "m", "", "Model name override")
	flag.IntVar(&args.Lines, "n", 10, "Number of trailing lines to send")
	flag.BoolVar(&args.Debug, "d", false, "Enable debug logging")
	flag.Parse()
	return args
}
