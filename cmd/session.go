package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/chordcompanion/session"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sessionCmd)
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Builds a progression interactively",
	Long: `Builds a progression interactively. Commands:
  add CHORD...   append chords
  starter [N]    replace the progression with a starter
  suggest        what could come next
  palette        chords of the current key
  key KEY        change key, clears the progression
  style STYLE    change style
  clear          clear the progression
  export FILE    write the progression as MIDI
  quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := session.New(cfg.Defaults.Key, cfg.Defaults.Style, nil)
		return runSession(s, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func printProgression(w io.Writer, s *session.Session) {
	fmt.Fprintf(w, "[%v, %v] progression: %v\n", s.Key(), s.Style(), strings.Join(s.Progression(), " - "))
}

func runSession(s *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	printProgression(out, s)
	fmt.Fprint(out, "> ")

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(out, "> ")
			continue
		}

		command, rest := fields[0], fields[1:]
		switch command {
		case "add":
			for _, ch := range rest {
				s.Add(ch)
			}
			printProgression(out, s)
			printSuggestions(out, s.Suggestions())
		case "starter":
			length := cfg.Defaults.Length
			if len(rest) > 0 {
				n, err := strconv.Atoi(rest[0])
				if err != nil || n < 1 {
					fmt.Fprintf(out, "bad length %q\n", rest[0])
					break
				}
				length = n
			}
			s.Starter(length)
			printProgression(out, s)
			printSuggestions(out, s.Suggestions())
		case "suggest":
			printSuggestions(out, s.Suggestions())
		case "palette":
			fmt.Fprintln(out, strings.Join(s.Palette(), " "))
		case "key":
			if len(rest) != 1 {
				fmt.Fprintln(out, "usage: key KEY")
				break
			}
			s.SetKey(rest[0])
			printProgression(out, s)
		case "style":
			if len(rest) != 1 {
				fmt.Fprintln(out, "usage: style STYLE")
				break
			}
			s.SetStyle(rest[0])
			printProgression(out, s)
		case "clear":
			s.Clear()
			printProgression(out, s)
		case "export":
			if len(rest) != 1 {
				fmt.Fprintln(out, "usage: export FILE")
				break
			}
			if err := exportProgression(rest[0], s.Progression(), cfg.Defaults.Tempo); err != nil {
				fmt.Fprintf(out, "export failed: %v\n", err)
			}
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q\n", command)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}
