package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// WordsCmd returns the words command.
func WordsCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	count := fs.Bool("count", false, "Print only the number of words")
	contains := fs.String("contains", "", "Print yes/no for membership of `word`")

	return &Command{
		Flags: fs,
		Usage: "words [--count] [--contains w]",
		Short: "List words",
		Long: `List the word set in lexical order. On a terminal the list is printed in
columns; otherwise one word per line.`,
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execWords(io, cfg, *count, fs.Changed("contains"), *contains)
		},
	}
}

func execWords(io *IO, cfg *Config, count bool, hasContains bool, word string) error {
	common, err := loadCommon(cfg)
	if err != nil {
		return err
	}

	words := common.Words()

	switch {
	case hasContains:
		if words.Contains(word) {
			io.Println("yes")
		} else {
			io.Println("no")
		}
	case count:
		io.Println(words.Len())
	default:
		all := words.All()

		if width, ok := terminalWidth(io.Out()); ok {
			all = columnize(all, width)
		}

		for _, line := range all {
			io.Println(line)
		}
	}

	return nil
}
