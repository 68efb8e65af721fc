package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mattn/lispy"
)

var cli struct {
	Config   string           `help:"Configuration file (default ~/.lispy.yaml)." type:"path"`
	Eval     []string         `short:"e" sep:"none" placeholder:"EXPR" help:"Evaluate expression and exit. May be repeated."`
	AST      bool             `name:"ast" help:"Print the parse tree instead of evaluating."`
	Grammar  bool             `help:"Print the grammar and exit."`
	LogLevel string           `help:"Log level (debug, info, warn, error)."`
	LogFile  string           `help:"Write logs to this file instead of stderr." type:"path"`
	NoBanner bool             `help:"Do not print the banner in interactive mode."`
	Version  kong.VersionFlag `help:"Print version and exit."`

	Files []string `arg:"" optional:"" type:"existingfile" help:"Files to evaluate, one expression per line."`
}

// session evaluates lines for the command, logging each one.
type session struct {
	parser *lispy.Parser
	log    *zap.Logger
	ast    bool
}

func (s *session) Rep(line string) string {
	start := time.Now()
	if s.ast {
		prog, err := s.parser.ParseProgram(line)
		if err != nil {
			s.log.Debug("syntax error", zap.String("input", line), zap.Error(err))
			return err.Error()
		}
		return repr.String(prog, repr.Indent("  "))
	}

	node, err := s.parser.Parse(line)
	if err != nil {
		s.log.Debug("syntax error", zap.String("input", line), zap.Error(err))
		return err.Error()
	}
	result := lispy.Format(lispy.Eval(node))
	s.log.Debug("evaluated",
		zap.String("input", line),
		zap.Stringer("tree", node),
		zap.Int("depth", lispy.Depth(node)),
		zap.String("result", result),
		zap.Duration("elapsed", time.Since(start)))
	return result
}

func repl(s *session, cfg *Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return errors.Wrap(err, "init readline")
	}
	defer rl.Close()

	if cfg.Banner {
		fmt.Fprintln(rl.Stdout(), lispy.Banner)
	}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read line")
		}
		fmt.Fprintln(rl.Stdout(), s.Rep(line))
	}
}

func runFile(s *session, name string, w io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()
	return errors.Wrap(lispy.Run(s, f, w), name)
}

func run() error {
	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if cli.NoBanner {
		cfg.Banner = false
	}

	logger, err := NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	parser, err := lispy.NewParser()
	if err != nil {
		return err
	}
	if cli.Grammar {
		fmt.Println(parser)
		return nil
	}

	s := &session{
		parser: parser,
		log:    logger,
		ast:    cli.AST,
	}

	switch {
	case len(cli.Eval) > 0:
		for _, expr := range cli.Eval {
			fmt.Println(s.Rep(expr))
		}
	case len(cli.Files) > 0:
		for _, name := range cli.Files {
			if err := runFile(s, name, os.Stdout); err != nil {
				return err
			}
		}
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		logger.Debug("starting repl", zap.String("history", cfg.HistoryFile))
		return repl(s, cfg)
	default:
		return lispy.Run(s, os.Stdin, os.Stdout)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lispy"),
		kong.Description("Evaluate prefix arithmetic expressions such as \"* 2 (+ 3 4)\"."),
		kong.UsageOnError(),
		kong.Vars{"version": lispy.Version})
	ctx.FatalIfErrorf(run())
}
